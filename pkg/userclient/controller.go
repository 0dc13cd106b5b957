package userclient

import (
	"context"
	"sync"

	"github.com/lucasSouza225/cadastroUsuario/internal/common/logger"
	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/models"
)

// State is the lifecycle of the displayed user list.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Fixed, operation-specific error messages.
const (
	MsgLoadFailed   = "failed to load users"
	MsgCreateFailed = "failed to create user"
	MsgUpdateFailed = "failed to update user"
	MsgDeleteFailed = "failed to delete user"
)

// Snapshot is an immutable view of the controller state handed to
// subscribers.
type Snapshot struct {
	State State
	Users []models.User
	Err   string
}

// Confirmer approves or declines a pending delete. The frontend equivalent
// is the browser confirm dialog.
type Confirmer func(user models.User) bool

// Controller owns the in-memory user list and its loading/error flags. The
// list is never patched optimistically: every successful mutation is followed
// by a full refetch, so the view always matches the server after it settles.
// Operations are serialized; overlapping calls run one after another.
type Controller struct {
	api *Client

	// opMu serializes whole operations (mutation + refetch).
	opMu sync.Mutex

	// mu guards the state fields and the subscriber table.
	mu      sync.Mutex
	state   State
	users   []models.User
	errMsg  string
	subs    map[int]func(Snapshot)
	nextSub int
}

func NewController(api *Client) *Controller {
	return &Controller{
		api:   api,
		state: StateIdle,
		subs:  make(map[int]func(Snapshot)),
	}
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned function unsubscribes.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	users := make([]models.User, len(c.users))
	copy(users, c.users)
	return Snapshot{State: c.state, Users: users, Err: c.errMsg}
}

// setState mutates the controller state and notifies subscribers. Callbacks
// run outside the state lock so they may call Snapshot or Subscribe.
func (c *Controller) setState(mutate func()) {
	c.mu.Lock()
	mutate()
	snap := c.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Load fetches the user list. Called on mount and after every mutation.
func (c *Controller) Load(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()
	return c.refresh(ctx)
}

// refresh runs the fetch cycle: loading, then loaded or error. On failure the
// previous list stays visible; stale data beats a blank view.
func (c *Controller) refresh(ctx context.Context) error {
	c.setState(func() {
		c.state = StateLoading
	})

	users, err := c.api.ListUsers(ctx, models.UserFilter{})
	if err != nil {
		logger.Error().Err(err).Msg("List users failed")
		c.setState(func() {
			c.state = StateError
			c.errMsg = MsgLoadFailed
		})
		return err
	}

	c.setState(func() {
		c.state = StateLoaded
		c.users = users
		c.errMsg = ""
	})
	return nil
}

// Submit validates the form and creates the user. Validation failures are
// reported without any network call; on success the list is refetched.
func (c *Controller) Submit(ctx context.Context, form FormInput) error {
	if err := form.Validate(); err != nil {
		c.setState(func() {
			c.state = StateError
			c.errMsg = err.Error()
		})
		return err
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	input := models.CreateUserRequest{
		Name:  form.Name,
		Age:   form.ParsedAge(),
		Email: form.Email,
	}
	if _, err := c.api.CreateUser(ctx, input); err != nil {
		logger.Error().Err(err).Msg("Create user failed")
		c.setState(func() {
			c.state = StateError
			c.errMsg = MsgCreateFailed
		})
		return err
	}

	return c.refresh(ctx)
}

// Update replaces a user's fields and refetches the list.
func (c *Controller) Update(ctx context.Context, id int64, form FormInput) error {
	if err := form.Validate(); err != nil {
		c.setState(func() {
			c.state = StateError
			c.errMsg = err.Error()
		})
		return err
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	input := models.UpdateUserRequest{
		Name:  form.Name,
		Age:   form.ParsedAge(),
		Email: form.Email,
	}
	if _, err := c.api.UpdateUser(ctx, id, input); err != nil {
		logger.Error().Err(err).Msg("Update user failed")
		c.setState(func() {
			c.state = StateError
			c.errMsg = MsgUpdateFailed
		})
		return err
	}

	return c.refresh(ctx)
}

// Delete asks confirm before removing the user. Declining leaves the state
// untouched; confirming deletes and refetches.
func (c *Controller) Delete(ctx context.Context, id int64, confirm Confirmer) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if confirm != nil && !confirm(c.findUser(id)) {
		return nil
	}

	if _, err := c.api.DeleteUser(ctx, id); err != nil {
		logger.Error().Err(err).Msg("Delete user failed")
		c.setState(func() {
			c.state = StateError
			c.errMsg = MsgDeleteFailed
		})
		return err
	}

	return c.refresh(ctx)
}

func (c *Controller) findUser(id int64) models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, u := range c.users {
		if u.ID == id {
			return u
		}
	}
	return models.User{ID: id}
}
