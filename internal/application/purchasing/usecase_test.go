package purchasing_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/jhoicas/stocktrack-api/internal/application/ledger"
	"github.com/jhoicas/stocktrack-api/internal/application/purchasing"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el flujo completo de órdenes de compra: productos,
// movimientos, órdenes y proveedores comparten un store con mutex que simula
// la serialización de las transacciones. Los runners toman un snapshot al
// entrar y lo restauran si fn falla, igual que el rollback de una tx real.
// ──────────────────────────────────────────────────────────────────────────────

// Errores simulados de infraestructura, inyectables vía poStore.
var (
	errFalloLinea  = errors.New("fallo simulado al actualizar la línea")
	errFalloEstado = errors.New("fallo simulado al actualizar el estado")
)

type poStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.StockMovement
	orders    map[string]*entity.PurchaseOrder
	suppliers map[string]*entity.Supplier

	// failLine fuerza un error en UpdateLineReceived para esa línea, para
	// simular una falla a mitad de una recepción multi-línea.
	failLine string
	// failStatusTo fuerza un error en UpdateStatusFrom hacia ese estado.
	failStatusTo entity.OrderStatus
	// beforeTx corre una sola vez justo antes de abrir la siguiente
	// transacción; simula una escritura ajena ya confirmada que gana la
	// carrera (p. ej. un Send concurrente a un Delete).
	beforeTx func()
}

func newPOStore() *poStore {
	return &poStore{
		products:  map[string]*entity.Product{},
		orders:    map[string]*entity.PurchaseOrder{},
		suppliers: map[string]*entity.Supplier{},
	}
}

// poSnapshot captura el estado mutable del store para imitar el contrato
// begin/rollback/commit de una transacción real: si fn devuelve error, el
// runner restaura el estado previo.
type poSnapshot struct {
	products  map[string]*entity.Product
	movements []*entity.StockMovement
	orders    map[string]*entity.PurchaseOrder
}

func (s *poStore) snapshot() poSnapshot {
	products := make(map[string]*entity.Product, len(s.products))
	for id, p := range s.products {
		cp := *p
		products[id] = &cp
	}
	orders := make(map[string]*entity.PurchaseOrder, len(s.orders))
	for id, o := range s.orders {
		orders[id] = copyOrder(o)
	}
	return poSnapshot{
		products:  products,
		movements: append([]*entity.StockMovement(nil), s.movements...),
		orders:    orders,
	}
}

func (s *poStore) restore(snap poSnapshot) {
	s.products = snap.products
	s.movements = snap.movements
	s.orders = snap.orders
}

type poProductRepo struct{ s *poStore }

func (r *poProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *poProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *poProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r *poProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *poProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *poProductRepo) UpdateQuantity(id string, qty int64) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = qty
	return nil
}
func (r *poProductRepo) List(int, int) ([]*entity.Product, error)       { return nil, nil }
func (r *poProductRepo) ListLowStock(*int64) ([]*entity.Product, error) { return nil, nil }
func (r *poProductRepo) Deactivate(string) error                        { return nil }

type poMovementRepo struct{ s *poStore }

func (r *poMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}
func (r *poMovementRepo) GetByID(string) (*entity.StockMovement, error) { return nil, nil }
func (r *poMovementRepo) ListByProduct(productID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.s.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.movements[i].ProductID == productID {
			cp := *r.s.movements[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *poMovementRepo) SumByProduct(productID string) (int64, error) {
	var sum int64
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			sum += m.QuantityChange
		}
	}
	return sum, nil
}

type poOrderRepo struct{ s *poStore }

func copyOrder(o *entity.PurchaseOrder) *entity.PurchaseOrder {
	cp := *o
	cp.Lines = append([]entity.PurchaseOrderLine(nil), o.Lines...)
	return &cp
}

func (r *poOrderRepo) Create(o *entity.PurchaseOrder) error {
	r.s.orders[o.ID] = copyOrder(o)
	return nil
}
func (r *poOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return copyOrder(o), nil
}
func (r *poOrderRepo) UpdateStatusFrom(orderID string, from, to entity.OrderStatus) error {
	if r.s.failStatusTo != "" && to == r.s.failStatusTo {
		return errFalloEstado
	}
	o, ok := r.s.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if o.Status != from {
		return domain.ErrConflict
	}
	o.Status = to
	return nil
}
func (r *poOrderRepo) UpdateLineReceived(lineID string, received int64) error {
	if r.s.failLine == lineID {
		return errFalloLinea
	}
	for _, o := range r.s.orders {
		if l := o.LineByID(lineID); l != nil {
			l.ReceivedQuantity = received
			return nil
		}
	}
	return domain.ErrNotFound
}
func (r *poOrderRepo) ListByStatus(status entity.OrderStatus, limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range r.s.orders {
		if o.Status == status {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}
func (r *poOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range r.s.orders {
		out = append(out, copyOrder(o))
	}
	return out, nil
}
func (r *poOrderRepo) Delete(orderID string) error {
	o, ok := r.s.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if o.Status != entity.OrderStatusDraft {
		return domain.ErrInvalidState
	}
	delete(r.s.orders, orderID)
	return nil
}

type poSupplierRepo struct{ s *poStore }

func (r *poSupplierRepo) Create(sp *entity.Supplier) error { r.s.suppliers[sp.ID] = sp; return nil }
func (r *poSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	sp, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *sp
	return &cp, nil
}
func (r *poSupplierRepo) Update(sp *entity.Supplier) error          { return nil }
func (r *poSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }
func (r *poSupplierRepo) Deactivate(string) error                   { return nil }

type poTxRunner struct{ s *poStore }

func (t *poTxRunner) Run(_ context.Context, fn func(
	repository.ProductRepository,
	repository.StockMovementRepository,
	repository.PurchaseOrderRepository,
) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.s.beforeTx != nil {
		t.s.beforeTx()
		t.s.beforeTx = nil
	}
	snap := t.s.snapshot()
	if err := fn(&poProductRepo{s: t.s}, &poMovementRepo{s: t.s}, &poOrderRepo{s: t.s}); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

type ledgerTxRunner struct{ s *poStore }

func (t *ledgerTxRunner) Run(_ context.Context, fn func(
	repository.ProductRepository,
	repository.StockMovementRepository,
) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	snap := t.s.snapshot()
	if err := fn(&poProductRepo{s: t.s}, &poMovementRepo{s: t.s}); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

type noopLocker struct{}

func (noopLocker) Acquire(context.Context, string) (func(), error) { return func() {}, nil }

// ── fixture ───────────────────────────────────────────────────────────────────

func newFixture() (*poStore, *purchasing.PurchaseOrderUseCase) {
	s := newPOStore()
	s.suppliers["s1"] = &entity.Supplier{ID: "s1", Name: "Proveedor Uno", Status: entity.SupplierStatusActive}
	s.suppliers["s2"] = &entity.Supplier{ID: "s2", Name: "Proveedor Dos", Status: entity.SupplierStatusInactive}
	s.products["p1"] = &entity.Product{ID: "p1", Name: "tornillos", Status: entity.ProductStatusActive}
	s.products["p2"] = &entity.Product{ID: "p2", Name: "tuercas", Status: entity.ProductStatusActive}

	ledgerUC := ledger.NewLedgerUseCase(&ledgerTxRunner{s: s}, &poProductRepo{s: s}, &poMovementRepo{s: s})
	uc := purchasing.NewPurchaseOrderUseCase(
		&poTxRunner{s: s}, noopLocker{},
		&poOrderRepo{s: s}, &poProductRepo{s: s}, &poSupplierRepo{s: s}, ledgerUC,
	)
	return s, uc
}

func createOrder(t *testing.T, uc *purchasing.PurchaseOrderUseCase, lines ...purchasing.OrderLineInput) *entity.PurchaseOrder {
	t.Helper()
	if len(lines) == 0 {
		lines = []purchasing.OrderLineInput{
			{ProductID: "p1", OrderedQuantity: 10, UnitCost: decimal.NewFromFloat(2.50)},
		}
	}
	order, err := uc.Create(context.Background(), "u1", purchasing.CreateOrderInput{
		SupplierID: "s1", Lines: lines,
	})
	require.NoError(t, err)
	return order
}

// setStatus avanza el estado directamente en el store (atajo de fixture).
func setStatus(s *poStore, orderID string, status entity.OrderStatus) {
	s.orders[orderID].Status = status
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestCreate_OrdenEnBorradorConTotal(t *testing.T) {
	_, uc := newFixture()

	order := createOrder(t, uc,
		purchasing.OrderLineInput{ProductID: "p1", OrderedQuantity: 3, UnitCost: decimal.NewFromFloat(10.50)},
		purchasing.OrderLineInput{ProductID: "p2", OrderedQuantity: 2, UnitCost: decimal.NewFromFloat(0.99)},
	)

	assert.Equal(t, entity.OrderStatusDraft, order.Status)
	assert.True(t, strings.HasPrefix(order.PONumber, "PO-"), "el número debe ser legible: %s", order.PONumber)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(33.48)),
		"total = 3×10.50 + 2×0.99")
	require.Len(t, order.Lines, 2)
	assert.Zero(t, order.Lines[0].ReceivedQuantity)
}

func TestCreate_ProveedorInactivoRechazado(t *testing.T) {
	_, uc := newFixture()
	_, err := uc.Create(context.Background(), "u1", purchasing.CreateOrderInput{
		SupplierID: "s2",
		Lines:      []purchasing.OrderLineInput{{ProductID: "p1", OrderedQuantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_LineasInvalidas(t *testing.T) {
	_, uc := newFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, "u1", purchasing.CreateOrderInput{
		SupplierID: "s1",
		Lines:      []purchasing.OrderLineInput{{ProductID: "p1", OrderedQuantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.Create(ctx, "u1", purchasing.CreateOrderInput{
		SupplierID: "s1",
		Lines: []purchasing.OrderLineInput{
			{ProductID: "p1", OrderedQuantity: 1, UnitCost: decimal.NewFromFloat(-1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "costo negativo")

	_, err = uc.Create(ctx, "u1", purchasing.CreateOrderInput{
		SupplierID: "s1",
		Lines:      []purchasing.OrderLineInput{{ProductID: "nope", OrderedQuantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	_, err = uc.Create(ctx, "u1", purchasing.CreateOrderInput{SupplierID: "s1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas")
}

// ── Transiciones ──────────────────────────────────────────────────────────────

func TestSendConfirm_CaminoFeliz(t *testing.T) {
	_, uc := newFixture()
	ctx := context.Background()
	order := createOrder(t, uc)

	sent, err := uc.Send(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusSent, sent.Status)

	confirmed, err := uc.Confirm(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, confirmed.Status)
}

func TestTransiciones_FueraDeOrdenRechazadas(t *testing.T) {
	s, uc := newFixture()
	ctx := context.Background()
	order := createOrder(t, uc)

	// Confirm exige sent.
	_, err := uc.Confirm(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Send desde confirmed tampoco.
	setStatus(s, order.ID, entity.OrderStatusConfirmed)
	_, err = uc.Send(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Nada sale de un estado terminal.
	setStatus(s, order.ID, entity.OrderStatusReceived)
	_, err = uc.Cancel(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCancel_DesdeEstadosNoTerminales(t *testing.T) {
	s, uc := newFixture()
	ctx := context.Background()
	order := createOrder(t, uc)
	setStatus(s, order.ID, entity.OrderStatusSent)

	cancelled, err := uc.Cancel(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)

	// La cancelación no genera movimientos de stock.
	assert.Empty(t, s.movements)
}

// ── Receive ───────────────────────────────────────────────────────────────────

func TestReceive_ParcialYLuegoCompleta(t *testing.T) {
	s, uc := newFixture()
	ctx := context.Background()
	order := createOrder(t, uc)
	setStatus(s, order.ID, entity.OrderStatusConfirmed)
	lineID := order.Lines[0].ID

	// Primera entrega: 6 de 10.
	got, err := uc.Receive(ctx, "u1", order.ID, []purchasing.ReceiveLineInput{
		{LineID: lineID, Quantity: 6},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPartiallyReceived, got.Status)
	assert.Equal(t, int64(6), got.Lines[0].ReceivedQuantity)
	assert.Equal(t, int64(6), s.products["p1"].Quantity, "la recepción entra al stock")

	// Segunda entrega: las 4 restantes completan la orden.
	got, err = uc.Receive(ctx, "u1", order.ID, []purchasing.ReceiveLineInput{
		{LineID: lineID, Quantity: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReceived, got.Status)
	assert.Equal(t, int64(10), s.products["p1"].Quantity)

	// Dos entregas, dos movimientos, ambos etiquetados con la orden.
	require.Len(t, s.movements, 2)
	for _, m := range s.movements {
		assert.Equal(t, entity.MovementTypeIn, m.Type)
		assert.Equal(t, "PO "+order.PONumber, m.Reason)
	}
}

func TestReceive_CompletaEnUnaSolaEntrega(t *testing.T) {
	s, uc := newFixture()
	order := createOrder(t, uc)
	setStatus(s, order.ID, entity.OrderStatusConfirmed)

	got, err := uc.Receive(context.Background(), "u1", order.ID, []purchasing.ReceiveLineInput{
		{LineID: order.Lines[0].ID, Quantity: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReceived, got.Status, "entrega total salta directo a received")
}

func TestReceive_SobreRecepcionRechazadaSinEscribir(t *testing.T) {
	s, uc := newFixture()
	ctx := context.Background()
	order := createOrder(t, uc)
	setStatus(s, order.ID, entity.OrderStatusConfirmed)
	lineID := order.Lines[0].ID

	_, err := uc.Receive(ctx, "u1", order.ID, []purchasing.ReceiveLineInput{
		{LineID: lineID, Quantity: 11},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// La misma línea repetida en una llamada también cuenta acumulada.
	_, err = uc.Receive(ctx, "u1", order.ID, []purchasing.ReceiveLineInput{
		{LineID: lineID, Quantity: 6},
		{LineID: lineID, Quantity: 6},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, s.movements, "la validación previa impide cualquier escritura")
	assert.Zero(t, s.products["p1"].Quantity)
}

func TestReceive_EstadoInvalido(t *testing.T) {
	_, uc := newFixture()
	order := createOrder(t, uc)

	// En draft no se recibe nada.
	_, err := uc.Receive(context.Background(), "u1", order.ID, []purchasing.ReceiveLineInput{
		{LineID: order.Lines[0].ID, Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReceive_DeltaCeroONegativo(t *testing.T) {
	s, uc := newFixture()
	order := createOrder(t, uc)
	setStatus(s, order.ID, entity.OrderStatusConfirmed)

	for _, qty := range []int64{0, -3} {
		_, err := uc.Receive(context.Background(), "u1", order.ID, []purchasing.ReceiveLineInput{
			{LineID: order.Lines[0].ID, Quantity: qty},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "delta %d debe rechazarse", qty)
	}
}

// TestReceive_FallaAMitadConservaLoAplicado simula una falla de base de datos
// en la segunda línea: la primera queda aplicada, la orden queda en
// partially_received y el error se devuelve para reintentar el resto.
func TestReceive_FallaAMitadConservaLoAplicado(t *testing.T) {
	s, uc := newFixture()
	order := createOrder(t, uc,
		purchasing.OrderLineInput{ProductID: "p1", OrderedQuantity: 5, UnitCost: decimal.NewFromInt(1)},
		purchasing.OrderLineInput{ProductID: "p2", OrderedQuantity: 5, UnitCost: decimal.NewFromInt(1)},
	)
	setStatus(s, order.ID, entity.OrderStatusConfirmed)
	s.failLine = order.Lines[1].ID

	got, err := uc.Receive(context.Background(), "u1", order.ID, []purchasing.ReceiveLineInput{
		{LineID: order.Lines[0].ID, Quantity: 5},
		{LineID: order.Lines[1].ID, Quantity: 5},
	})
	require.Error(t, err)
	require.NotNil(t, got, "la orden vuelve con lo que sí se aplicó")
	assert.Equal(t, entity.OrderStatusPartiallyReceived, got.Status)
	assert.Equal(t, int64(5), s.products["p1"].Quantity, "la primera línea quedó aplicada")
	assert.Len(t, s.movements, 1)

	// La transacción de la segunda línea se revirtió completa: ni stock ni
	// cantidad recibida quedan a medias.
	assert.Zero(t, s.products["p2"].Quantity)
	assert.Zero(t, s.orders[order.ID].Lines[1].ReceivedQuantity)
}

// TestReceive_FallaDeLineaYDeEstadoReportaAmbas encadena dos fallas: una línea
// y luego el cambio de estado. El error devuelto debe conservar ambas causas.
func TestReceive_FallaDeLineaYDeEstadoReportaAmbas(t *testing.T) {
	s, uc := newFixture()
	order := createOrder(t, uc,
		purchasing.OrderLineInput{ProductID: "p1", OrderedQuantity: 5, UnitCost: decimal.NewFromInt(1)},
		purchasing.OrderLineInput{ProductID: "p2", OrderedQuantity: 5, UnitCost: decimal.NewFromInt(1)},
	)
	setStatus(s, order.ID, entity.OrderStatusConfirmed)
	s.failLine = order.Lines[1].ID
	s.failStatusTo = entity.OrderStatusPartiallyReceived

	got, err := uc.Receive(context.Background(), "u1", order.ID, []purchasing.ReceiveLineInput{
		{LineID: order.Lines[0].ID, Quantity: 5},
		{LineID: order.Lines[1].ID, Quantity: 5},
	})
	require.Error(t, err)
	require.NotNil(t, got)
	assert.ErrorIs(t, err, errFalloLinea, "la causa original no debe perderse")
	assert.ErrorIs(t, err, errFalloEstado)
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestDelete_SoloBorradorSinRecepciones(t *testing.T) {
	s, uc := newFixture()
	ctx := context.Background()

	order := createOrder(t, uc)
	require.NoError(t, uc.Delete(ctx, order.ID))
	_, err := uc.Get(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Fuera de draft el borrado es ilegal.
	order = createOrder(t, uc)
	setStatus(s, order.ID, entity.OrderStatusSent)
	assert.ErrorIs(t, uc.Delete(ctx, order.ID), domain.ErrInvalidState)

	// Con recepciones tampoco, aunque el estado lo pareciera permitir.
	order = createOrder(t, uc)
	s.orders[order.ID].Lines[0].ReceivedQuantity = 1
	assert.ErrorIs(t, uc.Delete(ctx, order.ID), domain.ErrInvalidState)
}

// TestDelete_EnvioConcurrenteGanaLaCarrera simula un Send que cambia el estado
// entre la verificación del caso de uso y el DELETE: el borrado condicionado a
// draft debe fallar y la orden enviada debe sobrevivir.
func TestDelete_EnvioConcurrenteGanaLaCarrera(t *testing.T) {
	s, uc := newFixture()
	ctx := context.Background()
	order := createOrder(t, uc)

	s.beforeTx = func() {
		s.orders[order.ID].Status = entity.OrderStatusSent
	}

	assert.ErrorIs(t, uc.Delete(ctx, order.ID), domain.ErrInvalidState)

	got, err := uc.Get(ctx, order.ID)
	require.NoError(t, err, "la orden enviada no debe desaparecer")
	assert.Equal(t, entity.OrderStatusSent, got.Status)
}

// ── Listados ──────────────────────────────────────────────────────────────────

func TestListByStatus_FiltraYValida(t *testing.T) {
	s, uc := newFixture()
	ctx := context.Background()

	o1 := createOrder(t, uc)
	o2 := createOrder(t, uc)
	setStatus(s, o2.ID, entity.OrderStatusSent)
	_ = o1

	drafts, err := uc.ListByStatus(ctx, entity.OrderStatusDraft, 20, 0)
	require.NoError(t, err)
	assert.Len(t, drafts, 1)

	all, err := uc.ListByStatus(ctx, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = uc.ListByStatus(ctx, "shipped", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
