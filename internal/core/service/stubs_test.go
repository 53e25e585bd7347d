package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Security stubs
// ---------------------------------------------------------------------------

// stubHasher "hashes" by prefixing, and counts how often Hash is called.
type stubHasher struct {
	calls int
}

func (h *stubHasher) Hash(plain string) (string, error) {
	h.calls++
	return "hashed:" + plain, nil
}

func (h *stubHasher) Verify(plain, hash string) bool {
	return hash == "hashed:"+plain
}

type stubIssuer struct {
	subject string
	role    domain.Role
}

func (i *stubIssuer) Issue(subjectID string, role domain.Role) (string, error) {
	i.subject, i.role = subjectID, role
	return "token-for-" + subjectID, nil
}

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[string]*domain.User
	nextID  int
	since   time.Time
	lastLim int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) add(u domain.User) *domain.User {
	if u.ID == "" {
		r.nextID++
		u.ID = fmt.Sprintf("u%d", r.nextID)
	}
	r.byID[u.ID] = cloneUser(&u)
	return cloneUser(&u)
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, err := r.FindByEmail(ctx, user.Email); err == nil {
		return nil, domain.ErrEmailTaken
	}
	return r.add(*user), nil
}

func (r *stubUserRepo) UpdateByID(_ context.Context, id string, p domain.UserPatch) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *stubUserRepo) List(_ context.Context, f ports.UserListFilter) ([]*domain.User, error) {
	r.lastLim = f.Limit
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *stubUserRepo) CountByMonth(_ context.Context, since time.Time) ([]domain.MonthlyCount, error) {
	r.since = since
	return []domain.MonthlyCount{}, nil
}

// ---------------------------------------------------------------------------
// In-memory order repository
// ---------------------------------------------------------------------------

type stubOrderRepo struct {
	byID    map[string]*domain.Order
	nextID  int
	since   time.Time
	paid    map[string]string
	paidErr error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{byID: make(map[string]*domain.Order), paid: make(map[string]string)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	r.nextID++
	clone := *o
	clone.ID = fmt.Sprintf("o%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) FindByUserID(_ context.Context, userID string) ([]*domain.Order, error) {
	out := []*domain.Order{}
	for _, o := range r.byID {
		if o.UserID == userID {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	out := []*domain.Order{}
	for _, o := range r.byID {
		clone := *o
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateByID(_ context.Context, id string, p domain.OrderPatch) (*domain.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Amount != nil {
		o.Amount = *p.Amount
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *stubOrderRepo) MarkPaid(_ context.Context, id, paymentID string) error {
	if r.paidErr != nil {
		return r.paidErr
	}
	o, ok := r.byID[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = domain.OrderPaid
	o.PaymentID = paymentID
	r.paid[id] = paymentID
	return nil
}

func (r *stubOrderRepo) IncomeByMonth(_ context.Context, since time.Time) ([]domain.MonthlyIncome, error) {
	r.since = since
	return []domain.MonthlyIncome{}, nil
}

// ---------------------------------------------------------------------------
// In-memory cart and product repositories
// ---------------------------------------------------------------------------

type stubCartRepo struct {
	byID   map[string]*domain.Cart
	nextID int
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{byID: make(map[string]*domain.Cart)}
}

func (r *stubCartRepo) Create(_ context.Context, c *domain.Cart) (*domain.Cart, error) {
	r.nextID++
	clone := *c
	clone.ID = fmt.Sprintf("c%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCartRepo) FindByID(_ context.Context, id string) (*domain.Cart, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCartRepo) FindByUserID(_ context.Context, userID string) (*domain.Cart, error) {
	for _, c := range r.byID {
		if c.UserID == userID {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCartNotFound
}

func (r *stubCartRepo) List(_ context.Context) ([]*domain.Cart, error) {
	out := []*domain.Cart{}
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCartRepo) ReplaceItems(_ context.Context, id string, items []domain.LineItem) (*domain.Cart, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	c.Products = items
	clone := *c
	return &clone, nil
}

func (r *stubCartRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type stubProductRepo struct {
	byID       map[string]*domain.Product
	lastFilter ports.ProductListFilter
	nextID     int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	for _, existing := range r.byID {
		if strings.EqualFold(existing.Title, p.Title) {
			return nil, domain.ErrProductExists
		}
	}
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("p%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) List(_ context.Context, f ports.ProductListFilter) ([]*domain.Product, error) {
	r.lastFilter = f
	return []*domain.Product{}, nil
}

func (r *stubProductRepo) UpdateByID(_ context.Context, id string, p domain.ProductPatch) (*domain.Product, error) {
	existing, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if p.Price != nil {
		existing.Price = *p.Price
	}
	clone := *existing
	return &clone, nil
}

func (r *stubProductRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

// ---------------------------------------------------------------------------
// Payment stubs
// ---------------------------------------------------------------------------

type stubGateway struct {
	calls int
	last  ports.ChargeRequest
	err   error
}

func (g *stubGateway) Charge(_ context.Context, req ports.ChargeRequest) (*domain.Charge, error) {
	g.calls++
	g.last = req
	if g.err != nil {
		return nil, g.err
	}
	return &domain.Charge{
		ID:       fmt.Sprintf("ch_%d", g.calls),
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   "succeeded",
		Paid:     true,
	}, nil
}

type stubGuard struct {
	seen     map[string]bool
	err      error
	released []string
}

func newStubGuard() *stubGuard {
	return &stubGuard{seen: make(map[string]bool)}
}

func (g *stubGuard) Acquire(_ context.Context, key string) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	if g.seen[key] {
		return false, nil
	}
	g.seen[key] = true
	return true, nil
}

func (g *stubGuard) Release(_ context.Context, key string) error {
	delete(g.seen, key)
	g.released = append(g.released, key)
	return nil
}
