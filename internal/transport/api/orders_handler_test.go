package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/gamepay/internal/catalog"
	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/fsdevblog/gamepay/internal/logger"
	"github.com/fsdevblog/gamepay/internal/service"
	"github.com/fsdevblog/gamepay/internal/transport/api/middlewares"
	"github.com/fsdevblog/gamepay/internal/transport/api/mocks"
	"github.com/fsdevblog/gamepay/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type OrdersHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	catalog          *catalog.Catalog
	mockOrderService *mocks.MockOrderServicer
}

func TestOrdersHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrdersHandlerTestSuite))
}

func (s *OrdersHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.catalog = catalog.New()
	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		Catalog:      s.catalog,
		OrderService: s.mockOrderService,
		SessionTTL:   time.Hour,
	})
}

func sessionCookie(sessionID string) []*http.Cookie {
	return []*http.Cookie{{
		Name:  middlewares.SessionCookieName,
		Value: sessionID,
	}}
}

func (s *OrdersHandlerTestSuite) TestIndexGames() {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + GamesRoute,
	}
	res, err := testutils.MakeRequest(args)
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var games []GameResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&games))
	s.Equal(len(s.catalog.Games()), len(games))
	s.Equal("mobile-legends", games[0].ID)
	s.Equal("6.99", games[0].Packages[1].Price)
}

// TestIndexGamesIssuesSessionCookie запрос без cookie получает новую сессию.
func (s *OrdersHandlerTestSuite) TestIndexGamesIssuesSessionCookie() {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + GamesRoute,
	}
	res, err := testutils.MakeRequest(args)
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	var issued *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == middlewares.SessionCookieName {
			issued = c
		}
	}
	s.Require().NotNil(issued)
	s.NotEmpty(issued.Value)
	s.True(issued.HttpOnly)
}

func (s *OrdersHandlerTestSuite) TestCreate() {
	sessionID := gofakeit.UUID()
	userID := gofakeit.Username()

	order := domain.PendingOrder{
		CreatedAt:     time.Now().UTC(),
		GameID:        "mobile-legends",
		GameName:      "Mobile Legends",
		GameIcon:      "🎮",
		PackageID:     "ml-250",
		UserReference: userID,
		OrderRef:      "ORDER-" + gofakeit.UUID(),
		Amount:        "6.99",
	}

	s.mockOrderService.EXPECT().
		Reserve(gomock.Any(), sessionID, service.ReserveArgs{
			GameID:        "mobile-legends",
			PackageID:     "ml-250",
			UserReference: userID,
		}).
		Return(&service.Reservation{
			ClientToken: "sandbox_client_token",
			Order:       order,
		}, nil).Times(1)

	payload, marshalErr := json.Marshal(gin.H{
		"gameId":    "mobile-legends",
		"packageId": "ml-250",
		"userId":    userID,
		// сумма от клиента должна игнорироваться
		"amount": "0.01",
	})
	s.Require().NoError(marshalErr)

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + OrderRoute,
		Body:   bytes.NewReader(payload),
	}
	res, err := testutils.MakeRequest(args, testutils.WithCookies(sessionCookie(sessionID)))
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var reserveRes ReserveResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&reserveRes))
	s.Equal("sandbox_client_token", reserveRes.ClientToken)
	s.Equal(order.OrderRef, reserveRes.Order.OrderRef)
	s.Equal("6.99", reserveRes.Order.TotalAmount)
	s.Equal(userID, reserveRes.Order.UserID)
}

func (s *OrdersHandlerTestSuite) TestCreateErrors() {
	sessionID := gofakeit.UUID()

	s.mockOrderService.EXPECT().
		Reserve(gomock.Any(), sessionID, service.ReserveArgs{
			GameID:        "unknown-game",
			PackageID:     "ml-250",
			UserReference: "user-1",
		}).
		Return(nil, domain.ErrNotFound).Times(1)
	s.mockOrderService.EXPECT().
		Reserve(gomock.Any(), sessionID, service.ReserveArgs{
			GameID:        "mobile-legends",
			PackageID:     "ml-250",
			UserReference: "user-2",
		}).
		Return(nil, domain.ErrGatewayUnavailable).Times(1)

	cases := []struct {
		name       string
		payload    gin.H
		wantStatus int
	}{
		{
			name:       "unknown game",
			payload:    gin.H{"gameId": "unknown-game", "packageId": "ml-250", "userId": "user-1"},
			wantStatus: http.StatusNotFound,
		}, {
			name:       "gateway down",
			payload:    gin.H{"gameId": "mobile-legends", "packageId": "ml-250", "userId": "user-2"},
			wantStatus: http.StatusBadGateway,
		}, {
			name:       "missing fields",
			payload:    gin.H{"gameId": "mobile-legends"},
			wantStatus: http.StatusBadRequest,
		}, {
			name: "user id too long",
			payload: gin.H{
				"gameId":    "mobile-legends",
				"packageId": "ml-250",
				"userId":    gofakeit.LetterN(maxUserReferenceBytes + 1),
			},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			payload, marshalErr := json.Marshal(t.payload)
			s.Require().NoError(marshalErr)

			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + OrderRoute,
				Body:   bytes.NewReader(payload),
			}
			res, err := testutils.MakeRequest(args, testutils.WithCookies(sessionCookie(sessionID)))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
