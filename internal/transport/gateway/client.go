// Package gateway реализует HTTP клиент платежного шлюза: выпуск клиентского
// токена, проведение продажи и запрос статуса транзакции.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/gamepay/internal/domain"
)

const (
	RouteClientToken = "/merchants/%s/client_token"
	RouteSale        = "/merchants/%s/transactions"
	RouteTransaction = "/merchants/%s/transactions/%s"
)

// Config реквизиты доступа к шлюзу.
type Config struct {
	BaseURL    string
	MerchantID string
	PublicKey  string
	PrivateKey string
	Timeout    time.Duration
}

// SaleRequest запрос на проведение продажи. OrderRef передается шлюзу как
// ключ идемпотентности: повторная продажа с тем же ключом будет отклонена
// на стороне шлюза.
type SaleRequest struct {
	Amount        string
	Nonce         string
	OrderRef      string
	GameID        string
	PackageID     string
	UserReference string
}

// SaleError причина отказа, как её сообщил шлюз.
type SaleError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// SaleResult результат продажи или текущее состояние транзакции.
// Success=false — это отказ (decline), штатный ответ, а не ошибка транспорта.
type SaleResult struct {
	Success          bool                         `json:"success"`
	Message          string                       `json:"message,omitempty"`
	TransactionID    string                       `json:"transaction_id"`
	Status           domain.TransactionStatusType `json:"status"`
	Amount           string                       `json:"amount"`
	CurrencyISOCode  string                       `json:"currency_iso_code"`
	ProcessorMessage string                       `json:"processor_response_text,omitempty"`
	CreatedAt        time.Time                    `json:"created_at"`
	Errors           []SaleError                  `json:"errors,omitempty"`
}

// HTTPClient является реализацией интерфейса Client для HTTP запросов к платежному шлюзу.
type HTTPClient struct {
	conf       Config
	httpClient *http.Client
}

func New(conf Config) HTTPClient {
	return HTTPClient{
		conf: conf,
		httpClient: &http.Client{
			Timeout: conf.Timeout,
		},
	}
}

type clientTokenResponse struct {
	ClientToken string `json:"client_token"`
}

// GenerateClientToken запрашивает у шлюза свежий одноразовый клиентский токен.
// При ответе сервера со статусом отличным от http.StatusCreated возвращает StatusCodeError.
func (c HTTPClient) GenerateClientToken(ctx context.Context) (string, error) {
	url := c.conf.BaseURL + fmt.Sprintf(RouteClientToken, c.conf.MerchantID)

	body, err := c.do(ctx, http.MethodPost, url, nil, http.StatusCreated)
	if err != nil {
		return "", err
	}

	var response clientTokenResponse
	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		return "", fmt.Errorf("parse response: %s", jsonErr.Error())
	}

	if response.ClientToken == "" {
		return "", errors.New("empty client token in gateway response")
	}
	return response.ClientToken, nil
}

type saleRequestBody struct {
	Amount             string            `json:"amount"`
	PaymentMethodNonce string            `json:"payment_method_nonce"`
	OrderID            string            `json:"order_id"`
	Options            saleOptions       `json:"options"`
	CustomFields       map[string]string `json:"custom_fields"`
}

type saleOptions struct {
	SubmitForSettlement bool `json:"submit_for_settlement"`
}

// Sale проводит продажу. Каждый вызов двигает реальные деньги, поэтому
// вызывающая сторона обязана гарантировать не более одного вызова на заказ.
//
// Отказ шлюза (decline) возвращается как SaleResult с Success=false и
// заполненным Errors — это не ошибка. Ошибка возвращается только при проблемах
// транспорта или неожиданном статусе ответа.
func (c HTTPClient) Sale(ctx context.Context, saleReq SaleRequest) (*SaleResult, error) {
	url := c.conf.BaseURL + fmt.Sprintf(RouteSale, c.conf.MerchantID)

	reqBody := saleRequestBody{
		Amount:             saleReq.Amount,
		PaymentMethodNonce: saleReq.Nonce,
		OrderID:            saleReq.OrderRef,
		Options:            saleOptions{SubmitForSettlement: true},
		CustomFields: map[string]string{
			"game_id":        saleReq.GameID,
			"package_id":     saleReq.PackageID,
			"user_reference": saleReq.UserReference,
		},
	}

	payload, marshalErr := json.Marshal(reqBody)
	if marshalErr != nil {
		return nil, fmt.Errorf("marshal sale request: %s", marshalErr.Error())
	}

	// decline приходит как http.StatusUnprocessableEntity с тем же форматом тела.
	body, err := c.do(ctx, http.MethodPost, url, payload, http.StatusCreated, http.StatusUnprocessableEntity)
	if err != nil {
		return nil, err
	}

	return parseSaleResult(body)
}

// FindTransaction возвращает текущее состояние транзакции на шлюзе.
// Используется мониторингом расчетов для транзакций, отправленных на settlement.
func (c HTTPClient) FindTransaction(ctx context.Context, transactionID string) (*SaleResult, error) {
	url := c.conf.BaseURL + fmt.Sprintf(RouteTransaction, c.conf.MerchantID, transactionID)

	body, err := c.do(ctx, http.MethodGet, url, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return parseSaleResult(body)
}

func parseSaleResult(body []byte) (*SaleResult, error) {
	var result SaleResult
	if jsonErr := json.Unmarshal(body, &result); jsonErr != nil {
		return nil, fmt.Errorf("parse response: %s", jsonErr.Error())
	}
	return &result, nil
}

// do выполняет запрос с basic auth и возвращает тело ответа. Статусы не из
// acceptStatuses превращаются в StatusCodeError.
//
//nolint:nonamedreturns
func (c HTTPClient) do(
	ctx context.Context,
	method, url string,
	payload []byte,
	acceptStatuses ...int,
) (body []byte, err error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, url, reqBody)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.SetBasicAuth(c.conf.PublicKey, c.conf.PrivateKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	var accepted bool
	for _, status := range acceptStatuses {
		if resp.StatusCode == status {
			accepted = true
			break
		}
	}
	if !accepted {
		return nil, NewStatusCodeError(resp.StatusCode)
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response: %s", readErr.Error())
	}
	return body, nil
}
