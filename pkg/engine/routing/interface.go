package routing

import (
	"github.com/lakbayph/lakbay/pkg/datastructure"
)

type Router interface {
	Search(start, goal string) (*datastructure.Route, bool, error)
	SearchWithObserver(start, goal string, observe StepFunc) (*datastructure.Route, bool, error)
}
