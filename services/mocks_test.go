package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/repository"
)

var errRecordNotFound = errors.New("record not found")

// --- product repo ---

type mockProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*models.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[uuid.UUID]*models.Product)}
}

func (m *mockProductRepo) add(p *models.Product) *models.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.products[p.ID] = p
	return p
}

func (m *mockProductRepo) Create(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.add(p)
	return nil
}

func (m *mockProductRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, errRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockProductRepo) FindAll(_ context.Context, _ repository.ProductFilter) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductRepo) Update(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[p.ID]; !ok {
		return errRecordNotFound
	}
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) AdjustStock(_ context.Context, id uuid.UUID, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return repository.ErrInsufficientStock
	}
	if p.Stock+delta < 0 {
		return repository.ErrInsufficientStock
	}
	p.Stock += delta
	return nil
}

func (m *mockProductRepo) CountSince(_ context.Context, vendorID *uuid.UUID, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, p := range m.products {
		if p.CreatedAt.Before(since) {
			continue
		}
		if vendorID != nil && p.VendorID != *vendorID {
			continue
		}
		count++
	}
	return count, nil
}

func (m *mockProductRepo) stock(id uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id].Stock
}

func (m *mockProductRepo) snapshot() map[uuid.UUID]models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[uuid.UUID]models.Product, len(m.products))
	for id, p := range m.products {
		out[id] = *p
	}
	return out
}

func (m *mockProductRepo) restore(snap map[uuid.UUID]models.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = make(map[uuid.UUID]*models.Product, len(snap))
	for id, p := range snap {
		cp := p
		m.products[id] = &cp
	}
}

// --- order repo ---

type mockOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*models.Order
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[uuid.UUID]*models.Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	for i := range o.Items {
		if o.Items[i].ID == uuid.Nil {
			o.Items[i].ID = uuid.New()
		}
		o.Items[i].OrderID = o.ID
	}
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, errRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) FindByCustomerID(_ context.Context, customerID uuid.UUID, _, _ int) ([]models.Order, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, o := range m.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockOrderRepo) FindByVendorID(_ context.Context, vendorID uuid.UUID, _, _ int) ([]models.Order, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, o := range m.orders {
		if o.HasVendor(vendorID) {
			out = append(out, *o)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockOrderRepo) FindAll(_ context.Context, _, _ int) ([]models.Order, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (m *mockOrderRepo) Update(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[o.ID]; !ok {
		return errRecordNotFound
	}
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *mockOrderRepo) AppendMessage(_ context.Context, msg *models.OrderMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[msg.OrderID]
	if !ok {
		return errRecordNotFound
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	o.Messages = append(o.Messages, *msg)
	return nil
}

func (m *mockOrderRepo) CountSince(_ context.Context, vendorID *uuid.UUID, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, o := range m.orders {
		if o.CreatedAt.Before(since) {
			continue
		}
		if vendorID != nil && !o.HasVendor(*vendorID) {
			continue
		}
		count++
	}
	return count, nil
}

func (m *mockOrderRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

// --- payment repo ---

type mockPaymentRepo struct {
	mu       sync.Mutex
	payments map[uuid.UUID]*models.Payment // keyed by order id
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{payments: make(map[uuid.UUID]*models.Payment)}
}

func (m *mockPaymentRepo) Create(_ context.Context, p *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	m.payments[p.OrderID] = &cp
	return nil
}

func (m *mockPaymentRepo) FindByOrderID(_ context.Context, orderID uuid.UUID) (*models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[orderID]
	if !ok {
		return nil, errRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockPaymentRepo) FindByCustomerID(_ context.Context, customerID uuid.UUID) ([]models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Payment
	for _, p := range m.payments {
		if p.CustomerID == customerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockPaymentRepo) UpdateStatus(_ context.Context, orderID uuid.UUID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[orderID]
	if !ok {
		return errRecordNotFound
	}
	p.Status = status
	return nil
}

// --- cart repo ---

type mockCartRepo struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: make(map[string]*models.Cart)}
}

func (m *mockCartRepo) GetCart(_ context.Context, userID string) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[userID]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Items = append([]models.CartItem(nil), c.Items...)
	return &cp, nil
}

func (m *mockCartRepo) SaveCart(_ context.Context, cart *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *cart
	cp.Items = append([]models.CartItem(nil), cart.Items...)
	m.carts[cart.UserID] = &cp
	return nil
}

func (m *mockCartRepo) DeleteCart(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, userID)
	return nil
}

// --- notification repo ---

type mockNotificationRepo struct {
	mu            sync.Mutex
	notifications []models.Notification
	failCreate    bool
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{}
}

func (m *mockNotificationRepo) Create(_ context.Context, n *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate {
		return errors.New("notification store down")
	}
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	m.notifications = append(m.notifications, *n)
	return nil
}

func (m *mockNotificationRepo) FindByRecipient(_ context.Context, recipientID uuid.UUID, limit int) ([]models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Notification
	for _, n := range m.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) CountUnread(_ context.Context, recipientID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, n := range m.notifications {
		if n.RecipientID == recipientID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id, recipientID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notifications {
		if m.notifications[i].ID == id && m.notifications[i].RecipientID == recipientID {
			m.notifications[i].Read = true
			return nil
		}
	}
	return errRecordNotFound
}

func (m *mockNotificationRepo) Delete(_ context.Context, id, recipientID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notifications {
		if m.notifications[i].ID == id && m.notifications[i].RecipientID == recipientID {
			m.notifications = append(m.notifications[:i], m.notifications[i+1:]...)
			return nil
		}
	}
	return errRecordNotFound
}

func (m *mockNotificationRepo) forRecipient(id uuid.UUID) []models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Notification
	for _, n := range m.notifications {
		if n.RecipientID == id {
			out = append(out, n)
		}
	}
	return out
}

// --- user repo ---

type mockUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, errRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errRecordNotFound
}

func (m *mockUserRepo) FindByRole(_ context.Context, role string) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) Update(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return errRecordNotFound
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

// --- review repo ---

type mockReviewRepo struct {
	mu      sync.Mutex
	reviews map[uuid.UUID]*models.Review
}

func newMockReviewRepo() *mockReviewRepo {
	return &mockReviewRepo{reviews: make(map[uuid.UUID]*models.Review)}
}

func (m *mockReviewRepo) Create(_ context.Context, r *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.reviews {
		if existing.ProductID == r.ProductID && existing.CustomerID == r.CustomerID {
			return repository.ErrDuplicateReview
		}
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	cp := *r
	m.reviews[r.ID] = &cp
	return nil
}

func (m *mockReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reviews[id]
	if !ok {
		return nil, errRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockReviewRepo) FindByProductID(_ context.Context, productID uuid.UUID) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Review
	for _, r := range m.reviews {
		if r.ProductID == productID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockReviewRepo) Update(_ context.Context, r *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reviews[r.ID]; !ok {
		return errRecordNotFound
	}
	cp := *r
	m.reviews[r.ID] = &cp
	return nil
}

func (m *mockReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.reviews, id)
	return nil
}

func (m *mockReviewRepo) IncrementHelpful(_ context.Context, id uuid.UUID) (*models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reviews[id]
	if !ok {
		return nil, errRecordNotFound
	}
	r.Helpful++
	cp := *r
	return &cp, nil
}

// --- inventory repo ---

type mockInventoryRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*models.Inventory // keyed by product id
}

func newMockInventoryRepo() *mockInventoryRepo {
	return &mockInventoryRepo{records: make(map[uuid.UUID]*models.Inventory)}
}

func (m *mockInventoryRepo) Upsert(_ context.Context, inv *models.Inventory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	inv.Recalculate()
	cp := *inv
	m.records[inv.ProductID] = &cp
	return nil
}

func (m *mockInventoryRepo) FindByProductID(_ context.Context, productID uuid.UUID) (*models.Inventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.records[productID]
	if !ok {
		return nil, errRecordNotFound
	}
	cp := *inv
	return &cp, nil
}

func (m *mockInventoryRepo) FindByVendorID(_ context.Context, vendorID uuid.UUID) ([]models.Inventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Inventory
	for _, inv := range m.records {
		if inv.VendorID == vendorID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (m *mockInventoryRepo) FindLowStock(_ context.Context, vendorID uuid.UUID) ([]models.Inventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Inventory
	for _, inv := range m.records {
		if inv.VendorID == vendorID && inv.IsLowStock {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (m *mockInventoryRepo) DeleteByProductID(_ context.Context, productID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, productID)
	return nil
}

// --- producer ---

type mockProducer struct {
	mu        sync.Mutex
	published [][]byte
	topics    []string
	fail      bool
}

func (m *mockProducer) Publish(topic string, message []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("broker unavailable")
	}
	m.topics = append(m.topics, topic)
	m.published = append(m.published, append([]byte(nil), message...))
	return nil
}

func (m *mockProducer) Close() error { return nil }

func (m *mockProducer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.published)
}

// --- tx manager ---

// mockTxManager mimics rollback by snapshotting the product store before the
// function runs and restoring it when the function errors.
type mockTxManager struct {
	products *mockProductRepo
}

func (m *mockTxManager) WithTransaction(_ context.Context, fn func(ctx context.Context) error) error {
	var snap map[uuid.UUID]models.Product
	if m.products != nil {
		snap = m.products.snapshot()
	}
	if err := fn(context.Background()); err != nil {
		if m.products != nil {
			m.products.restore(snap)
		}
		return err
	}
	return nil
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func testNotifier(notifications *mockNotificationRepo, producer *mockProducer) *Notifier {
	if producer == nil {
		return NewNotifier(notifications, nil, "", testLogger())
	}
	return NewNotifier(notifications, producer, "order.events", testLogger())
}

// --- return repo ---

type mockReturnRepo struct {
	mu      sync.Mutex
	returns map[uuid.UUID]*models.ReturnRequest
}

func newMockReturnRepo() *mockReturnRepo {
	return &mockReturnRepo{returns: make(map[uuid.UUID]*models.ReturnRequest)}
}

func (m *mockReturnRepo) Create(_ context.Context, ret *models.ReturnRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ret.ID == uuid.Nil {
		ret.ID = uuid.New()
	}
	cp := *ret
	m.returns[ret.ID] = &cp
	return nil
}

func (m *mockReturnRepo) FindByID(_ context.Context, id uuid.UUID) (*models.ReturnRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ret, ok := m.returns[id]
	if !ok {
		return nil, errRecordNotFound
	}
	cp := *ret
	return &cp, nil
}

func (m *mockReturnRepo) FindByVendorID(_ context.Context, vendorID uuid.UUID, status string) ([]models.ReturnRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ReturnRequest
	for _, ret := range m.returns {
		if ret.VendorID != vendorID {
			continue
		}
		if status != "" && ret.Status != status {
			continue
		}
		out = append(out, *ret)
	}
	return out, nil
}

func (m *mockReturnRepo) Update(_ context.Context, ret *models.ReturnRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.returns[ret.ID]; !ok {
		return errRecordNotFound
	}
	cp := *ret
	m.returns[ret.ID] = &cp
	return nil
}

// --- dispute repo ---

type mockDisputeRepo struct {
	mu       sync.Mutex
	disputes map[uuid.UUID]*models.Dispute
}

func newMockDisputeRepo() *mockDisputeRepo {
	return &mockDisputeRepo{disputes: make(map[uuid.UUID]*models.Dispute)}
}

func (m *mockDisputeRepo) Create(_ context.Context, d *models.Dispute) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	cp := *d
	m.disputes[d.ID] = &cp
	return nil
}

func (m *mockDisputeRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Dispute, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.disputes[id]
	if !ok {
		return nil, errRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *mockDisputeRepo) FindByVendorID(_ context.Context, vendorID uuid.UUID, status string) ([]models.Dispute, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Dispute
	for _, d := range m.disputes {
		if d.VendorID != vendorID {
			continue
		}
		if status != "" && d.Status != status {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (m *mockDisputeRepo) Update(_ context.Context, d *models.Dispute) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.disputes[d.ID]; !ok {
		return errRecordNotFound
	}
	cp := *d
	m.disputes[d.ID] = &cp
	return nil
}

func (m *mockDisputeRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, d := range m.disputes {
		if d.Status == status {
			count++
		}
	}
	return count, nil
}

// --- vendor message repo ---

type mockVendorMessageRepo struct {
	mu       sync.Mutex
	messages map[uuid.UUID]*models.VendorMessage
}

func newMockVendorMessageRepo() *mockVendorMessageRepo {
	return &mockVendorMessageRepo{messages: make(map[uuid.UUID]*models.VendorMessage)}
}

func (m *mockVendorMessageRepo) Create(_ context.Context, msg *models.VendorMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	cp := *msg
	m.messages[msg.ID] = &cp
	return nil
}

func (m *mockVendorMessageRepo) FindByID(_ context.Context, id uuid.UUID) (*models.VendorMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.messages[id]
	if !ok {
		return nil, errRecordNotFound
	}
	cp := *msg
	return &cp, nil
}

func (m *mockVendorMessageRepo) FindByParticipant(_ context.Context, userID uuid.UUID) ([]models.VendorMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.VendorMessage
	for _, msg := range m.messages {
		if msg.SenderID == userID || msg.RecipientID == userID {
			out = append(out, *msg)
		}
	}
	return out, nil
}

func (m *mockVendorMessageRepo) Update(_ context.Context, msg *models.VendorMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.messages[msg.ID]; !ok {
		return errRecordNotFound
	}
	cp := *msg
	m.messages[msg.ID] = &cp
	return nil
}

// --- leave repo ---

type mockLeaveRepo struct {
	mu     sync.Mutex
	leaves map[uuid.UUID]*models.LeaveRequest
}

func newMockLeaveRepo() *mockLeaveRepo {
	return &mockLeaveRepo{leaves: make(map[uuid.UUID]*models.LeaveRequest)}
}

func (m *mockLeaveRepo) Create(_ context.Context, l *models.LeaveRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	cp := *l
	m.leaves[l.ID] = &cp
	return nil
}

func (m *mockLeaveRepo) FindByID(_ context.Context, id uuid.UUID) (*models.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.leaves[id]
	if !ok {
		return nil, errRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *mockLeaveRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]models.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.LeaveRequest
	for _, l := range m.leaves {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (m *mockLeaveRepo) FindAll(_ context.Context, status string) ([]models.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.LeaveRequest
	for _, l := range m.leaves {
		if status != "" && l.Status != status {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (m *mockLeaveRepo) Update(_ context.Context, l *models.LeaveRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.leaves[l.ID]; !ok {
		return errRecordNotFound
	}
	cp := *l
	m.leaves[l.ID] = &cp
	return nil
}

// --- task repo ---

type mockTaskRepo struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*models.AdminTask
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{tasks: make(map[uuid.UUID]*models.AdminTask)}
}

func (m *mockTaskRepo) Create(_ context.Context, t *models.AdminTask) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

func (m *mockTaskRepo) FindByID(_ context.Context, id uuid.UUID) (*models.AdminTask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return nil, errRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *mockTaskRepo) FindAll(_ context.Context, vendorID *uuid.UUID, status string) ([]models.AdminTask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.AdminTask
	for _, t := range m.tasks {
		if vendorID != nil && t.VendorID != *vendorID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTaskRepo) Update(_ context.Context, t *models.AdminTask) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[t.ID]; !ok {
		return errRecordNotFound
	}
	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

func (m *mockTaskRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, t := range m.tasks {
		if t.Status == status {
			count++
		}
	}
	return count, nil
}

// --- goal repo ---

type mockGoalRepo struct {
	mu    sync.Mutex
	goals map[uuid.UUID]*models.PerformanceGoal
}

func newMockGoalRepo() *mockGoalRepo {
	return &mockGoalRepo{goals: make(map[uuid.UUID]*models.PerformanceGoal)}
}

func (m *mockGoalRepo) Create(_ context.Context, g *models.PerformanceGoal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	cp := *g
	m.goals[g.ID] = &cp
	return nil
}

func (m *mockGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*models.PerformanceGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.goals[id]
	if !ok {
		return nil, errRecordNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *mockGoalRepo) FindByVendorID(_ context.Context, vendorID uuid.UUID) ([]models.PerformanceGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.PerformanceGoal
	for _, g := range m.goals {
		if g.VendorID == vendorID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (m *mockGoalRepo) Update(_ context.Context, g *models.PerformanceGoal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.goals[g.ID]; !ok {
		return errRecordNotFound
	}
	cp := *g
	m.goals[g.ID] = &cp
	return nil
}

// --- compliance repo ---

type mockComplianceRepo struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*models.VendorCompliance
}

func newMockComplianceRepo() *mockComplianceRepo {
	return &mockComplianceRepo{docs: make(map[uuid.UUID]*models.VendorCompliance)}
}

func (m *mockComplianceRepo) Create(_ context.Context, c *models.VendorCompliance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	m.docs[c.ID] = &cp
	return nil
}

func (m *mockComplianceRepo) FindByID(_ context.Context, id uuid.UUID) (*models.VendorCompliance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.docs[id]
	if !ok {
		return nil, errRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockComplianceRepo) FindAll(_ context.Context, vendorID *uuid.UUID) ([]models.VendorCompliance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.VendorCompliance
	for _, c := range m.docs {
		if vendorID != nil && c.VendorID != *vendorID {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockComplianceRepo) Update(_ context.Context, c *models.VendorCompliance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[c.ID]; !ok {
		return errRecordNotFound
	}
	cp := *c
	m.docs[c.ID] = &cp
	return nil
}

func (m *mockComplianceRepo) UpdateScore(_ context.Context, vendorID uuid.UUID, score int, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.docs {
		if c.VendorID == vendorID {
			c.ComplianceScore = score
			c.Status = status
		}
	}
	return nil
}

func (m *mockComplianceRepo) CountByStatus(_ context.Context, documentStatus string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, c := range m.docs {
		if c.DocumentStatus == documentStatus {
			count++
		}
	}
	return count, nil
}

// --- activity log repo ---

type mockActivityRepo struct {
	mu      sync.Mutex
	entries []models.ActivityLog
}

func newMockActivityRepo() *mockActivityRepo {
	return &mockActivityRepo{}
}

func (m *mockActivityRepo) Create(_ context.Context, l *models.ActivityLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	m.entries = append(m.entries, *l)
	return nil
}

func (m *mockActivityRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit int) ([]models.ActivityLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ActivityLog
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockActivityRepo) FindSince(_ context.Context, userID uuid.UUID, since time.Time) ([]models.ActivityLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ActivityLog
	for _, e := range m.entries {
		if e.UserID == userID && !e.CreatedAt.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockActivityRepo) FindAllSince(_ context.Context, since time.Time) ([]models.ActivityLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ActivityLog
	for _, e := range m.entries {
		if !e.CreatedAt.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}
