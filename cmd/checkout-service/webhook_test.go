package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crescer-cursos/checkout-api/internal/mercadopago"
	"github.com/crescer-cursos/checkout-api/internal/webhook"
)

// fetcherFunc adapts a func to webhook.PaymentFetcher.
type fetcherFunc func(ctx context.Context, id string) (*mercadopago.Payment, error)

func (f fetcherFunc) GetPayment(ctx context.Context, id string) (*mercadopago.Payment, error) {
	return f(ctx, id)
}

func webhookRouter(d *webhook.Dispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/mercadopago", mercadopagoWebhookHandler(d))
	return r
}

func deliver(r http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/mercadopago", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestWebhook_AcksAndDispatchesPayment(t *testing.T) {
	t.Parallel()

	approved := make(chan struct{}, 1)
	d := &webhook.Dispatcher{
		Payments: fetcherFunc(func(_ context.Context, id string) (*mercadopago.Payment, error) {
			assert.Equal(t, "123", id)
			return &mercadopago.Payment{ID: 123, Status: "approved"}, nil
		}),
		Handlers: webhook.Handlers{
			Approved:  func(context.Context, *mercadopago.Payment) { approved <- struct{}{} },
			Pending:   func(context.Context, *mercadopago.Payment) { t.Error("pending branch hit") },
			Rejected:  func(context.Context, *mercadopago.Payment) { t.Error("rejected branch hit") },
			Unhandled: func(context.Context, *mercadopago.Payment) { t.Error("unhandled branch hit") },
		},
	}
	r := webhookRouter(d)

	w := deliver(r, `{"type":"payment","data":{"id":"123"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	select {
	case <-approved:
	case <-time.After(2 * time.Second):
		t.Fatal("approved branch never ran")
	}
}

func TestWebhook_AckDespiteFetchFailure(t *testing.T) {
	t.Parallel()

	fetched := make(chan struct{}, 1)
	d := &webhook.Dispatcher{
		Payments: fetcherFunc(func(context.Context, string) (*mercadopago.Payment, error) {
			fetched <- struct{}{}
			return nil, errors.New("mp indisponível")
		}),
		Handlers: webhook.DefaultHandlers(),
	}
	r := webhookRouter(d)

	w := deliver(r, `{"type":"payment","data":{"id":"123"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	select {
	case <-fetched:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch never attempted")
	}
}

func TestWebhook_IgnoresOtherTypes(t *testing.T) {
	t.Parallel()

	var fetches int32
	d := &webhook.Dispatcher{
		Payments: fetcherFunc(func(context.Context, string) (*mercadopago.Payment, error) {
			atomic.AddInt32(&fetches, 1)
			return nil, nil
		}),
		Handlers: webhook.DefaultHandlers(),
	}
	r := webhookRouter(d)

	w := deliver(r, `{"type":"test","data":{"id":"123"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	// o tipo é checado antes do despacho, então não há corrida aqui
	assert.Equal(t, int32(0), atomic.LoadInt32(&fetches))
}

func TestWebhook_MalformedBody(t *testing.T) {
	t.Parallel()

	d := webhook.NewDispatcher(fetcherFunc(func(context.Context, string) (*mercadopago.Payment, error) {
		t.Error("fetch should not run")
		return nil, nil
	}))
	r := webhookRouter(d)

	w := deliver(r, `{not json`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error", w.Body.String())
}

func TestWebhook_RedeliveryDispatchesTwice(t *testing.T) {
	t.Parallel()

	approved := make(chan struct{}, 2)
	d := &webhook.Dispatcher{
		Payments: fetcherFunc(func(context.Context, string) (*mercadopago.Payment, error) {
			return &mercadopago.Payment{ID: 123, Status: "approved"}, nil
		}),
		Handlers: webhook.Handlers{
			Approved:  func(context.Context, *mercadopago.Payment) { approved <- struct{}{} },
			Pending:   func(context.Context, *mercadopago.Payment) {},
			Rejected:  func(context.Context, *mercadopago.Payment) {},
			Unhandled: func(context.Context, *mercadopago.Payment) {},
		},
	}
	r := webhookRouter(d)

	for i := 0; i < 2; i++ {
		w := deliver(r, `{"type":"payment","data":{"id":"123"}}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	for i := 0; i < 2; i++ {
		select {
		case <-approved:
		case <-time.After(2 * time.Second):
			t.Fatalf("approved branch ran %d time(s), expected 2", i)
		}
	}
}
