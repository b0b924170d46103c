package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) newClient() HTTPClient {
	return New(Config{
		BaseURL:    s.server.URL,
		MerchantID: "merchant_1",
		PublicKey:  "pub_key",
		PrivateKey: "priv_key",
		Timeout:    time.Second,
	})
}

func (s *ClientTestSuite) TestGenerateClientToken() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/merchants/merchant_1/client_token", r.URL.Path)

		// реквизиты передаются через basic auth.
		user, pass, ok := r.BasicAuth()
		s.True(ok)
		s.Equal("pub_key", user)
		s.Equal("priv_key", pass)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, wErr := w.Write([]byte(`{"client_token":"token_abc"}`))
		s.NoError(wErr)
	}))

	token, err := s.newClient().GenerateClientToken(context.Background())
	s.Require().NoError(err)
	s.Equal("token_abc", token)
}

func (s *ClientTestSuite) TestGenerateClientTokenUnexpectedStatus() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := s.newClient().GenerateClientToken(context.Background())
	s.Require().Error(err)

	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusServiceUnavailable, statusErr.Code)
}

func (s *ClientTestSuite) TestSale() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/merchants/merchant_1/transactions", r.URL.Path)

		var reqBody saleRequestBody
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&reqBody))
		s.Equal("6.99", reqBody.Amount)
		s.Equal("nonce-1", reqBody.PaymentMethodNonce)
		s.Equal("ORDER-11111111", reqBody.OrderID)
		s.True(reqBody.Options.SubmitForSettlement)
		s.Equal("mobile-legends", reqBody.CustomFields["game_id"])
		s.Equal("ml-250", reqBody.CustomFields["package_id"])
		s.Equal("u1", reqBody.CustomFields["user_reference"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, wErr := w.Write([]byte(`{
			"success": true,
			"transaction_id": "tx_1",
			"status": "submitted_for_settlement",
			"amount": "6.99",
			"currency_iso_code": "USD",
			"processor_response_text": "Approved"
		}`))
		s.NoError(wErr)
	}))

	result, err := s.newClient().Sale(context.Background(), SaleRequest{
		Amount:        "6.99",
		Nonce:         "nonce-1",
		OrderRef:      "ORDER-11111111",
		GameID:        "mobile-legends",
		PackageID:     "ml-250",
		UserReference: "u1",
	})
	s.Require().NoError(err)
	s.True(result.Success)
	s.Equal("tx_1", result.TransactionID)
	s.Equal(domain.TransactionStatusSubmittedForSettlement, result.Status)
	s.Equal("6.99", result.Amount)
	s.Equal("USD", result.CurrencyISOCode)
	s.Equal("Approved", result.ProcessorMessage)
}

// TestSaleDeclined отказ шлюза не является ошибкой: клиент обязан вернуть
// результат с Success=false и причинами отказа как есть.
func (s *ClientTestSuite) TestSaleDeclined() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, wErr := w.Write([]byte(`{
			"success": false,
			"message": "Insufficient Funds",
			"errors": [
				{"code": "2001", "message": "Insufficient Funds", "field": "amount"}
			]
		}`))
		s.NoError(wErr)
	}))

	result, err := s.newClient().Sale(context.Background(), SaleRequest{
		Amount:   "6.99",
		Nonce:    "nonce-1",
		OrderRef: "ORDER-11111112",
	})
	s.Require().NoError(err)
	s.False(result.Success)
	s.Equal("Insufficient Funds", result.Message)
	s.Require().Len(result.Errors, 1)
	s.Equal("2001", result.Errors[0].Code)
	s.Equal("Insufficient Funds", result.Errors[0].Message)
	s.Equal("amount", result.Errors[0].Field)
}

func (s *ClientTestSuite) TestSaleUnexpectedStatus() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := s.newClient().Sale(context.Background(), SaleRequest{Amount: "6.99", Nonce: "n"})
	s.Require().Error(err)

	var statusErr *StatusCodeError
	s.ErrorAs(err, &statusErr)
}

func (s *ClientTestSuite) TestSaleTransportError() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	client := s.newClient()
	s.server.Close()

	_, err := client.Sale(context.Background(), SaleRequest{Amount: "6.99", Nonce: "n"})
	s.Error(err)
}

func (s *ClientTestSuite) TestFindTransaction() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal("/merchants/merchant_1/transactions/tx_1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, wErr := w.Write([]byte(`{
			"success": true,
			"transaction_id": "tx_1",
			"status": "settled",
			"amount": "6.99",
			"currency_iso_code": "USD"
		}`))
		s.NoError(wErr)
	}))

	result, err := s.newClient().FindTransaction(context.Background(), "tx_1")
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusSettled, result.Status)
}
