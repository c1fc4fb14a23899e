package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnhub_checkout/internal/adapter/http/handlers/mocks"
	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCheckoutHandler_CreateIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFulfillmentUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/checkout/intents", h.CreateIntent)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/intents", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase errors are mapped", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{usecase.ErrInvalidGateway, http.StatusBadRequest},
			{usecase.ErrCourseNotFound, http.StatusNotFound},
			{usecase.ErrAlreadyOwned, http.StatusConflict},
			{usecase.ErrCourseNotPurchasable, http.StatusConflict},
			{fmt.Errorf("%w: timeout", usecase.ErrCheckoutUnavailable), http.StatusBadGateway},
			{errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIFulfillmentUseCase(ctrl)
			h := NewCheckoutHandler(uc)
			uc.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).Return(usecase.IntentLaunch{}, tc.err)

			r := gin.New()
			r.POST("/v1/checkout/intents", h.CreateIntent)

			req := httptest.NewRequest(http.MethodPost, "/v1/checkout/intents", bytes.NewBufferString(`{"buyer_id":"b-1","course_id":"c-1","gateway":"bank"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFulfillmentUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		uc.EXPECT().CreateIntent(gomock.Any(), usecase.CreateIntentCommand{
			BuyerID: "b-1", CourseID: "c-1", Gateway: entities.GatewayBank,
		}).Return(usecase.IntentLaunch{
			Intent: entities.PaymentIntent{ID: "pi-1", Gateway: entities.GatewayBank, Status: entities.PaymentStatusPending},
			Bank:   &usecase.BankInstructions{Reference: "pi-1", Amount: 100, Currency: "LKR"},
		}, nil)

		r := gin.New()
		r.POST("/v1/checkout/intents", h.CreateIntent)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/intents", bytes.NewBufferString(`{"buyer_id":"b-1","course_id":"c-1","gateway":"BANK"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		bank, ok := body["bank"].(map[string]any)
		if !ok || bank["reference"] != "pi-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_GetIntentAndGrants(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFulfillmentUseCase(ctrl)
	h := NewCheckoutHandler(uc)

	r := gin.New()
	r.GET("/v1/checkout/intents/:intent_id", h.GetIntent)
	r.GET("/v1/buyers/:buyer_id/grants", h.ListBuyerGrants)

	uc.EXPECT().GetIntent(gomock.Any(), "missing").Return(entities.PaymentIntent{}, usecase.ErrUnknownIntent)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/checkout/intents/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().GetIntent(gomock.Any(), "pi-1").Return(entities.PaymentIntent{ID: "pi-1", Status: entities.PaymentStatusConfirmed}, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/checkout/intents/pi-1", nil))
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"status":"confirmed"`)) {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}

	uc.EXPECT().ListGrantsByBuyer(gomock.Any(), "b-1").Return([]entities.AccessGrant{{BuyerID: "b-1", CourseID: "c-1", IntentID: "pi-1"}}, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/buyers/b-1/grants", nil))
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"course_id":"c-1"`)) {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}
