package bot

import (
	"sync"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// draftState tracks where a task creation conversation stands. States only
// move forward; /cancelar drops the whole draft.
type draftState int

const (
	draftTitle draftState = iota
	draftDescription
	draftCategory
	draftPriority
	draftImage
)

// taskDraft accumulates the answers of the creation flow.
type taskDraft struct {
	title       string
	description string
	imageID     string
	priority    domain.Priority
	categoryID  int64
	state       draftState
}

// pendingKind marks what the next free-text message should be applied to.
// At most one marker is active per conversation.
type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingEditTitle
	pendingEditDescription
	pendingComment
	pendingChangelogDescription    // editing an existing entry
	pendingNewChangelogDescription // category already chosen
	pendingNewChangelogCategory
	pendingNewTaskCategoryName
)

type pendingInput struct {
	category string // target category for pendingNewChangelogDescription
	taskID   int64
	entryID  int64
	kind     pendingKind
}

// session is the conversation state of one (chat, user) pair.
type session struct {
	draft   *taskDraft
	pending pendingInput
}

type sessionKey struct {
	ChatID int64
	UserID int64
}

// sessionStore holds all live conversations. Sessions are created on first
// use and removed when a flow completes or is cancelled.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[sessionKey]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[sessionKey]*session)}
}

func (s *sessionStore) get(chatID, userID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := sessionKey{ChatID: chatID, UserID: userID}
	sess, ok := s.sessions[key]
	if !ok {
		sess = &session{}
		s.sessions[key] = sess
	}
	return sess
}

func (s *sessionStore) clear(chatID, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionKey{ChatID: chatID, UserID: userID})
}
