package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/memory"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/legacy"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type legUoWFactory struct{ store *memory.LegStore }

func (f legUoWFactory) Create() commands.LegUoW { return f.store.NewUnitOfWork() }

type legacyUoWFactory struct{ store *memory.LegacyStore }

func (f legacyUoWFactory) Create() commands.LegacyUoW { return f.store.NewUnitOfWork() }

type fixture struct {
	e      *echo.Echo
	server *httpin.Server
	legacy *memory.LegacyStore
	orders *memory.OrderDirectory
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	legs := memory.NewLegStore()
	legacyStore := memory.NewLegacyStore()
	orders := memory.NewOrderDirectory()
	hooks := commands.CommitHooks{}

	server := httpin.NewServer(
		commands.NewDispatchLegCommandHandler(legUoWFactory{legs}, orders, hooks),
		commands.NewCompleteLegCommandHandler(legUoWFactory{legs}, orders, hooks),
		commands.NewMarkLegReadyCommandHandler(legUoWFactory{legs}, orders, hooks),
		commands.NewProvisionLegsCommandHandler(legUoWFactory{legs}, orders, hooks),
		commands.NewAdvanceLegacyDeliveryCommandHandler(legacyUoWFactory{legacyStore}, orders, hooks),
		queries.NewGetTrackingQueryHandler(legs, legacyStore, orders, nil, nil),
		queries.NewGetLegsForOrderQueryHandler(legs),
		queries.NewGetLegsForActorQueryHandler(orders, legs),
	)

	e, err := httpin.NewRouter(server, httpin.RouterOptions{})
	require.NoError(t, err)
	return fixture{e: e, server: server, legacy: legacyStore, orders: orders}
}

func (f fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func completeOrder(t *testing.T, seller, tailor string) *order.Order {
	t.Helper()
	details, err := order.NewFabricDetails(kernel.MustNewActorID(seller), "linen")
	require.NoError(t, err)
	tailorID := kernel.MustNewActorID(tailor)
	address, err := kernel.NewAddress(kernel.AddressFields{Line1: "22 Brigade Road", City: "Bengaluru"})
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), order.CompleteBooking, kernel.MustNewActorID("customer"),
		address, &details, &tailorID)
	require.NoError(t, err)
	return o
}

func TestServer_LegLifecycle(t *testing.T) {
	f := newFixture(t)
	o := completeOrder(t, "seller-1", "tailor-1")
	f.orders.Put(o)
	base := "/api/v1/orders/" + o.ID().String()

	rec := f.do(t, http.MethodPost, base+"/legs", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	legs := decode[[]servers.Leg](t, rec)
	require.Len(t, legs, 2)
	fabricID := legs[0].Id.String()
	assert.Equal(t, servers.FABRIC, legs[0].LegType)

	rec = f.do(t, http.MethodPost, "/api/v1/legs/"+fabricID+"/dispatch",
		`{"courierName":"DTDC","trackingId":"X1","actorId":"seller-2"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodPost, "/api/v1/legs/"+fabricID+"/dispatch",
		`{"courierName":" ","trackingId":"X1","actorId":"seller-1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodPost, "/api/v1/legs/"+fabricID+"/dispatch",
		`{"courierName":"DTDC","trackingId":"X1","actorId":"SELLER-1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	dispatched := decode[servers.Leg](t, rec)
	assert.Equal(t, servers.LegStatus("DISPATCHED"), dispatched.Status)
	require.NotNil(t, dispatched.CourierName)
	assert.Equal(t, "DTDC", *dispatched.CourierName)

	rec = f.do(t, http.MethodPost, "/api/v1/legs/"+fabricID+"/dispatch",
		`{"courierName":"DTDC","trackingId":"X1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, base+"/tracking", "")
	require.Equal(t, http.StatusOK, rec.Code)
	tr := decode[servers.Tracking](t, rec)
	assert.True(t, tr.Available)
	require.NotNil(t, tr.ProgressPercent)
	assert.Equal(t, 20, *tr.ProgressPercent)
	require.NotNil(t, tr.Address)
	assert.Equal(t, "Bengaluru", *tr.Address.City)

	rec = f.do(t, http.MethodPost, "/api/v1/legs/"+fabricID+"/complete", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/v1/actors/seller-1/legs?legType=FABRIC", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]servers.Leg](t, rec), 1)

	rec = f.do(t, http.MethodGet, "/api/v1/actors/seller-1/legs?legType=GARMENT", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]servers.Leg](t, rec))

	rec = f.do(t, http.MethodGet, base+"/legs?legType=GARMENT", "")
	require.Equal(t, http.StatusOK, rec.Code)
	garment := decode[[]servers.Leg](t, rec)
	require.Len(t, garment, 1)

	rec = f.do(t, http.MethodPost, "/api/v1/legs/"+garment[0].Id.String()+"/ready", `{"deliveryMethod":"courier"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	tr = decode[servers.Tracking](t, f.do(t, http.MethodGet, base+"/tracking", ""))
	assert.Equal(t, 60, *tr.ProgressPercent)
	require.NotNil(t, tr.History)
	assert.Len(t, *tr.History, 5)
}

func TestServer_TrackingNotAvailable(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String()+"/tracking", "")

	require.Equal(t, http.StatusOK, rec.Code)
	tr := decode[servers.Tracking](t, rec)
	assert.False(t, tr.Available)
	assert.Nil(t, tr.ProgressPercent)
	assert.Nil(t, tr.History)
}

func TestServer_RequestValidation(t *testing.T) {
	f := newFixture(t)
	legID := kernel.NewUUID().String()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"malformed order id", http.MethodGet, "/api/v1/orders/not-a-uuid/tracking", "", http.StatusBadRequest},
		{"unknown leg type", http.MethodGet, "/api/v1/orders/" + kernel.NewUUID().String() + "/legs?legType=BOX", "", http.StatusBadRequest},
		{"actor listing without leg type", http.MethodGet, "/api/v1/actors/seller-1/legs", "", http.StatusBadRequest},
		{"dispatch without tracking id", http.MethodPost, "/api/v1/legs/" + legID + "/dispatch", `{"courierName":"DTDC"}`, http.StatusBadRequest},
		{"unknown leg", http.MethodPost, "/api/v1/legs/" + legID + "/complete", "", http.StatusNotFound},
		{"unknown legacy phase", http.MethodPost, "/api/v1/orders/" + kernel.NewUUID().String() + "/legacy/box", `{"status":"dispatched"}`, http.StatusBadRequest},
		{"provision unknown order", http.MethodPost, "/api/v1/orders/" + kernel.NewUUID().String() + "/legs", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			body := decode[servers.Error](t, rec)
			assert.Equal(t, tt.status, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestServer_AdvanceLegacy(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)
	orderID := kernel.NewUUID()

	rec, err := legacy.NewRecord(orderID, kernel.MustNewActorID("customer"), kernel.Address{})
	require.NoError(t, err)
	uow := f.legacy.NewUnitOfWork()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.LegacyRecordRepository().Add(ctx, rec))
	require.NoError(t, uow.Commit(ctx))

	path := "/api/v1/orders/" + orderID.String() + "/legacy/fabric"
	res := f.do(t, http.MethodPost, path, `{"status":"dispatched","courierName":"DTDC","trackingNumber":"T-9"}`)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	tr := decode[servers.Tracking](t, res)
	require.NotNil(t, tr.Schema)
	assert.Equal(t, "legacy", *tr.Schema)
	require.NotNil(t, tr.Fabric)
	assert.Equal(t, "dispatched", tr.Fabric.Status)
	assert.Nil(t, tr.Fabric.LegId)

	res = f.do(t, http.MethodPost, path, `{"status":"pending"}`)
	assert.Equal(t, http.StatusConflict, res.Code, res.Body.String())
}

func TestServer_AdvanceLegacyOwnership(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)
	o := completeOrder(t, "seller-1", "tailor-1")
	f.orders.Put(o)

	rec, err := legacy.NewRecord(o.ID(), kernel.MustNewActorID("customer"), kernel.Address{})
	require.NoError(t, err)
	uow := f.legacy.NewUnitOfWork()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.LegacyRecordRepository().Add(ctx, rec))
	require.NoError(t, uow.Commit(ctx))

	base := "/api/v1/orders/" + o.ID().String()

	res := f.do(t, http.MethodPost, base+"/legacy/fabric",
		`{"status":"dispatched","courierName":"DTDC","trackingNumber":"T-1","actorId":"tailor-1"}`)
	assert.Equal(t, http.StatusNotFound, res.Code, res.Body.String())

	res = f.do(t, http.MethodPost, base+"/legacy/garment",
		`{"status":"ready_for_delivery","deliveryMethod":"courier","actorId":"seller-1"}`)
	assert.Equal(t, http.StatusNotFound, res.Code, res.Body.String())

	res = f.do(t, http.MethodPost, base+"/legacy/fabric",
		`{"status":"dispatched","courierName":"DTDC","trackingNumber":"T-1","actorId":"seller-1"}`)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	tr := decode[servers.Tracking](t, res)
	require.NotNil(t, tr.Schema)
	assert.Equal(t, "legacy", *tr.Schema)

	res = f.do(t, http.MethodPost, base+"/legs", "")
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

	res = f.do(t, http.MethodPost, base+"/legacy/garment",
		`{"status":"ready_for_delivery","deliveryMethod":"courier","actorId":"tailor-1"}`)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	written := decode[servers.Tracking](t, res)
	read := decode[servers.Tracking](t, f.do(t, http.MethodGet, base+"/tracking", ""))
	require.NotNil(t, written.Schema)
	assert.Equal(t, "legs", *written.Schema)
	assert.Equal(t, read, written)
}

type observation struct {
	handler string
	status  int
}

type recordingObserver struct{ seen []observation }

func (r *recordingObserver) ObserveRequest(handler, _ string, status int, _ time.Duration) {
	r.seen = append(r.seen, observation{handler: handler, status: status})
}

func TestRouter_HealthMetricsAndSwagger(t *testing.T) {
	observer := &recordingObserver{}
	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})

	e, err := httpin.NewRouter(newFixture(t).server, httpin.RouterOptions{
		Observer:       observer,
		MetricsHandler: metricsHandler,
	})
	require.NoError(t, err)

	for path, want := range map[string]int{
		"/health":           http.StatusOK,
		"/metrics":          http.StatusOK,
		"/openapi.yml":      http.StatusOK,
		"/swagger/doc.json": http.StatusOK,
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String()+"/tracking", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, observer.seen, 5)
	assert.Equal(t, observation{handler: "/api/v1/orders/:orderId/tracking", status: http.StatusOK}, observer.seen[4])
}
