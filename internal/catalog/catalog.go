// Package catalog содержит статический каталог игр и пакетов пополнения.
// Каталог строится один раз на старте процесса и далее только читается.
package catalog

import (
	"github.com/fsdevblog/gamepay/internal/domain"
)

// Catalog упорядоченный read-only справочник игр. Единственный источник цен:
// воркфлоу заказа никогда не берет сумму откуда-либо еще.
type Catalog struct {
	games []domain.Game
	index map[string]int
}

// New строит каталог из статического набора игр.
func New() *Catalog {
	games := defaultGames()

	index := make(map[string]int, len(games))
	for i, game := range games {
		index[game.ID] = i
	}

	return &Catalog{
		games: games,
		index: index,
	}
}

// Games возвращает игры в порядке отображения.
func (c *Catalog) Games() []domain.Game {
	return c.games
}

// FindPackage ищет пару игра/пакет. Возвращает domain.ErrNotFound если
// игра или пакет не существуют.
func (c *Catalog) FindPackage(gameID, packageID string) (*domain.Game, *domain.Package, error) {
	gameIdx, ok := c.index[gameID]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	game := c.games[gameIdx]

	for i := range game.Packages {
		if game.Packages[i].ID == packageID {
			return &game, &game.Packages[i], nil
		}
	}
	return nil, nil, domain.ErrNotFound
}
