package app

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

// Banner texts shown to staff after a failed action.
const (
	BannerSyncFailed    = "Sheets Sync Failed."
	BannerStatusFailed  = "Status update failed."
	BannerMenuFailed    = "Menu update failed."
	BannerProfileFailed = "Connected, but profile load failed."
	BannerSignedOut     = "Session expired. Please sign in again."
)

// Dashboard holds the in-memory orders and menu snapshots and routes staff
// actions to the use cases. Failures become a banner; a 401 from any call
// ends the session.
type Dashboard struct {
	settings *usecase.SettingsUseCase
	sessions *usecase.SessionUseCase
	orders   *usecase.OrderUseCase
	menu     *usecase.MenuUseCase
	syncer   *usecase.SyncUseCase
	logger   *slog.Logger

	syncing atomic.Bool
	wake    chan struct{}
	now     func() time.Time

	mu        sync.RWMutex
	orderList []model.Order
	menuItems []model.MenuItem
	newIDs    []string
	banner    string
	lastSync  time.Time
}

// NewDashboard constructs Dashboard.
func NewDashboard(
	settings *usecase.SettingsUseCase,
	sessions *usecase.SessionUseCase,
	orders *usecase.OrderUseCase,
	menu *usecase.MenuUseCase,
	syncer *usecase.SyncUseCase,
	logger *slog.Logger,
) *Dashboard {
	return &Dashboard{
		settings: settings,
		sessions: sessions,
		orders:   orders,
		menu:     menu,
		syncer:   syncer,
		logger:   logger,
		wake:     make(chan struct{}, 1),
		now:      time.Now,
	}
}

// Sync runs one tick. It returns ErrNoSession or ErrNotConfigured without
// touching the sheet, and ErrSyncInProgress when a tick is already running.
// The result is dropped with ErrNoSession if the session ended meanwhile.
func (d *Dashboard) Sync(ctx context.Context) error {
	sess, ok := d.sessions.Current()
	if !ok {
		return domainErrors.ErrNoSession
	}
	sheet, err := d.settings.SpreadsheetID()
	if err != nil {
		return err
	}
	if !d.syncing.CompareAndSwap(false, true) {
		return domainErrors.ErrSyncInProgress
	}
	defer d.syncing.Store(false)

	res, err := d.syncer.Tick(ctx)
	if err != nil {
		d.fail(sess.ID, err, BannerSyncFailed)
		return err
	}

	d.mu.Lock()
	// A tick that outlived its session must not refill a signed-out or newer dashboard.
	if cur, ok := d.sessions.Current(); !ok || cur.ID != sess.ID {
		d.mu.Unlock()
		d.logger.Debug("discarding sync result from an ended session")
		return domainErrors.ErrNoSession
	}
	if d.settings.Get().SpreadsheetID != sheet {
		d.mu.Unlock()
		d.logger.Debug("discarding sync result from a previous spreadsheet")
		return nil
	}
	d.orderList = res.Orders
	d.menuItems = res.Menu
	for _, id := range res.Arrived {
		if !slices.Contains(d.newIDs, id) {
			d.newIDs = append(d.newIDs, id)
		}
	}
	d.banner = ""
	d.lastSync = d.now()
	d.mu.Unlock()
	return nil
}

// PollInterval returns the configured polling period.
func (d *Dashboard) PollInterval() time.Duration {
	return d.settings.PollInterval()
}

// Wakeups signals the sync loop to tick now.
func (d *Dashboard) Wakeups() <-chan struct{} {
	return d.wake
}

func (d *Dashboard) State() model.DashboardState {
	sess, ok := d.sessions.Current()
	interval := d.settings.Get().PollingInterval

	d.mu.RLock()
	defer d.mu.RUnlock()
	return model.DashboardState{
		Authenticated:   ok,
		Profile:         sess.Profile,
		Banner:          d.banner,
		Syncing:         d.syncing.Load(),
		NewOrderIDs:     slices.Clone(d.newIDs),
		LastSync:        d.lastSync,
		OrderCount:      len(d.orderList),
		MenuCount:       len(d.menuItems),
		PollingInterval: interval,
	}
}

func (d *Dashboard) Orders() []model.Order {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.orderList)
}

func (d *Dashboard) Order(id string) (model.Order, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, o := range d.orderList {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Order{}, domainErrors.ErrNotFound
}

// IsNew reports whether id carries the new-order marker.
func (d *Dashboard) IsNew(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Contains(d.newIDs, id)
}

// UpdateOrderStatus writes status for id and clears its new marker.
func (d *Dashboard) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (model.Order, error) {
	sid := d.sessionID()
	if err := d.orders.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domainErrors.ErrInvalidStatus) {
			return model.Order{}, err
		}
		d.fail(sid, err, BannerStatusFailed)
		return model.Order{}, err
	}
	return d.applyStatus(id, status), nil
}

// AdvanceOrder moves id one step forward. Completed orders are left untouched.
func (d *Dashboard) AdvanceOrder(ctx context.Context, id string) (model.Order, error) {
	order, err := d.Order(id)
	if err != nil {
		return model.Order{}, err
	}

	sid := d.sessionID()
	next, moved, err := d.orders.Advance(ctx, order)
	if err != nil {
		d.fail(sid, err, BannerStatusFailed)
		return model.Order{}, err
	}
	if !moved {
		d.AcknowledgeOrder(id)
		return order, nil
	}
	return d.applyStatus(id, next), nil
}

// AcknowledgeOrder clears the new marker for id. It reports whether one was set.
func (d *Dashboard) AcknowledgeOrder(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropMarker(id)
}

func (d *Dashboard) Menu() []model.MenuItem {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.menuItems)
}

// UpdateMenuItem writes price and availability for id.
func (d *Dashboard) UpdateMenuItem(ctx context.Context, id, price string, available bool) (model.MenuItem, error) {
	sid := d.sessionID()
	item, err := d.menu.Update(ctx, id, price, available)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidPrice) {
			return model.MenuItem{}, err
		}
		d.fail(sid, err, BannerMenuFailed)
		return model.MenuItem{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.menuItems {
		if d.menuItems[i].ID == id {
			d.menuItems[i].Price = item.Price
			d.menuItems[i].Available = item.Available
			item.Name = d.menuItems[i].Name
		}
	}
	return item, nil
}

func (d *Dashboard) Settings() model.Settings {
	return d.settings.Get()
}

// UpdateSettings applies and persists patch, then restarts the poll timer.
// Switching spreadsheets drops the previous sheet's snapshots and markers.
func (d *Dashboard) UpdateSettings(ctx context.Context, patch model.SettingsPatch) (model.Settings, error) {
	previous := d.settings.Get().SpreadsheetID
	updated, err := d.settings.Update(ctx, patch)
	if updated.SpreadsheetID != previous {
		d.mu.Lock()
		d.reset()
		d.mu.Unlock()
	}
	d.notifyLoop()
	return updated, err
}

// BeginLogin returns the consent page URL.
func (d *Dashboard) BeginLogin() (string, error) {
	return d.sessions.BeginLogin()
}

// CompleteLogin finishes the redirect flow.
func (d *Dashboard) CompleteLogin(ctx context.Context, state, code string) (model.Session, error) {
	sess, err := d.sessions.CompleteLogin(ctx, state, code)
	return d.afterLogin(sess, err)
}

// AttachToken starts a session from a token obtained by the browser.
func (d *Dashboard) AttachToken(ctx context.Context, token string) (model.Session, error) {
	sess, err := d.sessions.AttachToken(ctx, token)
	return d.afterLogin(sess, err)
}

// Session returns the active session.
func (d *Dashboard) Session() (model.Session, bool) {
	return d.sessions.Current()
}

// Logout ends the session and drops the snapshots.
func (d *Dashboard) Logout() {
	d.sessions.Logout()
	d.mu.Lock()
	d.reset()
	d.banner = ""
	d.mu.Unlock()
}

func (d *Dashboard) afterLogin(sess model.Session, err error) (model.Session, error) {
	var pe *domainErrors.ProfileFetchError
	switch {
	case err == nil:
		d.setBanner("")
	case errors.As(err, &pe):
		d.setBanner(BannerProfileFailed)
	default:
		return model.Session{}, err
	}
	d.notifyLoop()
	return sess, nil
}

func (d *Dashboard) applyStatus(id string, status model.OrderStatus) model.Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dropMarker(id)
	for i := range d.orderList {
		if d.orderList[i].ID == id {
			d.orderList[i].Status = status
			return d.orderList[i]
		}
	}
	return model.Order{ID: id, Status: status}
}

func (d *Dashboard) dropMarker(id string) bool {
	i := slices.Index(d.newIDs, id)
	if i < 0 {
		return false
	}
	d.newIDs = slices.Delete(d.newIDs, i, i+1)
	return true
}

// fail turns err into a banner. A 401 only ends sessionID; a newer login is left alone.
func (d *Dashboard) fail(sessionID string, err error, banner string) {
	if errors.Is(err, context.Canceled) {
		return
	}
	if errors.Is(err, domainErrors.ErrUnauthorized) || errors.Is(err, domainErrors.ErrNoSession) {
		if sessionID == "" || !d.sessions.End(sessionID) {
			d.logger.Debug("ignoring rejection for an ended session", slog.String("error", err.Error()))
			return
		}
		d.logger.Warn("session rejected, signing out", slog.String("error", err.Error()))
		d.mu.Lock()
		d.reset()
		d.banner = BannerSignedOut
		d.mu.Unlock()
		return
	}
	d.logger.Error("dashboard action failed", slog.String("banner", banner), slog.String("error", err.Error()))
	d.setBanner(banner)
}

func (d *Dashboard) sessionID() string {
	sess, _ := d.sessions.Current()
	return sess.ID
}

func (d *Dashboard) reset() {
	d.orderList = nil
	d.menuItems = nil
	d.newIDs = nil
	d.lastSync = time.Time{}
}

func (d *Dashboard) setBanner(text string) {
	d.mu.Lock()
	d.banner = text
	d.mu.Unlock()
}

func (d *Dashboard) notifyLoop() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}
