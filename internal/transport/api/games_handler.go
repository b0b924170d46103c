package api

import (
	"net/http"

	"github.com/fsdevblog/gamepay/internal/catalog"
	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/gin-gonic/gin"
)

type GamesHandler struct {
	catalog *catalog.Catalog
}

func NewGamesHandler(cat *catalog.Catalog) *GamesHandler {
	return &GamesHandler{
		catalog: cat,
	}
}

type PackageResponse struct {
	ID       string `json:"id"`
	Quantity int64  `json:"quantity"`
	Unit     string `json:"unit"`
	Price    string `json:"price"`
	Bonus    int64  `json:"bonus"`
}

type GameResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Icon     string            `json:"icon"`
	Packages []PackageResponse `json:"packages"`
}

// Index GET RouteGroup + GamesRoute.
func (g *GamesHandler) Index(c *gin.Context) {
	games := g.catalog.Games()

	var response = make([]GameResponse, len(games))
	for i, game := range games {
		response[i] = newGameResponse(game)
	}

	c.JSON(http.StatusOK, response)
}

func newGameResponse(game domain.Game) GameResponse {
	packages := make([]PackageResponse, len(game.Packages))
	for i, pkg := range game.Packages {
		packages[i] = newPackageResponse(pkg)
	}
	return GameResponse{
		ID:       game.ID,
		Name:     game.Name,
		Icon:     game.Icon,
		Packages: packages,
	}
}

func newPackageResponse(pkg domain.Package) PackageResponse {
	return PackageResponse{
		ID:       pkg.ID,
		Quantity: pkg.Quantity,
		Unit:     pkg.Unit,
		Price:    pkg.Price.StringFixed(2),
		Bonus:    pkg.Bonus,
	}
}
