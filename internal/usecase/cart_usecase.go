package usecase

import (
	"context"
	"net/http"
	"strings"

	"beaticafe/internal/cart"
	"beaticafe/internal/domain/model"
)

// ProductFinder resolves catalog products for the cart.
type ProductFinder interface {
	Find(id string) (model.Product, bool)
}

// CartUsecase is the /cart logic. Each logged-in user has one cart that
// lives as long as the process (or until logout).
type CartUsecase struct {
	carts    *cart.Registry
	products ProductFinder
}

func NewCartUsecase(carts *cart.Registry, products ProductFinder) *CartUsecase {
	return &CartUsecase{carts: carts, products: products}
}

type CartItemResponse struct {
	ProductID string     `json:"product_id"`
	Product   ProductDTO `json:"product"`
	Quantity  int        `json:"quantity"`
	Subtotal  string     `json:"subtotal"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalPrice string             `json:"total_price"`
	Open       bool               `json:"open"`
}

type AddCartInput struct {
	ProductID string
}

type UpdateCartItemInput struct {
	Quantity int
}

func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartResponse, error) {
	s, err := u.store(userID)
	if err != nil {
		return CartResponse{}, err
	}
	return toCartResponse(s.Snapshot()), nil
}

// AddToCart adds one of the product (quantity +1 when already there).
func (u *CartUsecase) AddToCart(ctx context.Context, userID string, in AddCartInput) (CartResponse, error) {
	s, err := u.store(userID)
	if err != nil {
		return CartResponse{}, err
	}
	id := strings.TrimSpace(in.ProductID)
	if id == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	p, ok := u.products.Find(id)
	if !ok {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	s.Add(p)
	return toCartResponse(s.Snapshot()), nil
}

// UpdateCartItem sets the quantity; zero or less removes the line.
// Products not in the cart are ignored.
func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID, productID string, in UpdateCartItemInput) (CartResponse, error) {
	s, err := u.store(userID)
	if err != nil {
		return CartResponse{}, err
	}
	s.UpdateQuantity(productID, in.Quantity)
	return toCartResponse(s.Snapshot()), nil
}

func (u *CartUsecase) RemoveCartItem(ctx context.Context, userID, productID string) (CartResponse, error) {
	s, err := u.store(userID)
	if err != nil {
		return CartResponse{}, err
	}
	s.Remove(productID)
	return toCartResponse(s.Snapshot()), nil
}

// PanelAction is one of the cart drawer transitions.
type PanelAction string

const (
	PanelOpen   PanelAction = "open"
	PanelClose  PanelAction = "close"
	PanelToggle PanelAction = "toggle"
)

func (u *CartUsecase) SetPanel(ctx context.Context, userID string, action PanelAction) (CartResponse, error) {
	s, err := u.store(userID)
	if err != nil {
		return CartResponse{}, err
	}
	switch action {
	case PanelOpen:
		s.Open()
	case PanelClose:
		s.Close()
	case PanelToggle:
		s.Toggle()
	default:
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid action")
	}
	return toCartResponse(s.Snapshot()), nil
}

// Discard forgets the user's cart (logout).
func (u *CartUsecase) Discard(userID string) {
	u.carts.Drop(userID)
}

func (u *CartUsecase) store(userID string) (*cart.Store, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "login required")
	}
	return u.carts.Get(userID), nil
}

func toCartResponse(snap cart.Snapshot) CartResponse {
	items := make([]CartItemResponse, len(snap.Lines))
	for i, l := range snap.Lines {
		items[i] = CartItemResponse{
			ProductID: l.Product.ID,
			Product:   toProductDTO(l.Product),
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal().StringFixed(2),
		}
	}
	return CartResponse{
		Items:      items,
		TotalItems: snap.TotalItems,
		TotalPrice: snap.TotalPrice.StringFixed(2),
		Open:       snap.Open,
	}
}
