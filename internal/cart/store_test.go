package cart

import (
	"math/rand"
	"sync"
	"testing"

	"beaticafe/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func product(id, price string) model.Product {
	return model.Product{ID: id, Name: id, Price: decimal.RequireFromString(price), Category: model.CategoryCoffee}
}

func TestStore_AddUpdateScenario(t *testing.T) {
	s := NewStore()
	latte := product("latte", "4.75")

	s.Add(latte)
	assert.Equal(t, 1, s.TotalItems())
	assert.True(t, s.TotalPrice().Equal(latte.Price))

	s.Add(latte)
	assert.Equal(t, 2, s.Quantity("latte"))
	assert.Equal(t, 2, s.TotalItems())
	assert.Equal(t, "9.5", s.TotalPrice().String())

	s.UpdateQuantity("latte", 0)
	assert.Empty(t, s.Snapshot().Lines)
	assert.Equal(t, 0, s.TotalItems())
	assert.True(t, s.TotalPrice().IsZero())
}

func TestStore_UpdateQuantity(t *testing.T) {
	s := NewStore()
	s.Add(product("mocha", "5.25"))
	s.Add(product("scone", "3.00"))

	s.UpdateQuantity("mocha", 4)
	assert.Equal(t, 4, s.Quantity("mocha"))

	s.UpdateQuantity("scone", -3)
	assert.Equal(t, 0, s.Quantity("scone"))

	s.UpdateQuantity("ghost", 2)
	assert.Equal(t, 4, s.TotalItems())
	assert.Equal(t, "21", s.TotalPrice().String())
}

func TestStore_RemoveKeepsOrder(t *testing.T) {
	s := NewStore()
	for _, id := range []string{"a", "b", "c"} {
		s.Add(product(id, "1"))
	}

	s.Remove("b")
	s.Remove("missing")
	s.Add(product("a", "1"))

	snap := s.Snapshot()
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, "a", snap.Lines[0].Product.ID)
	assert.Equal(t, 2, snap.Lines[0].Quantity)
	assert.Equal(t, "c", snap.Lines[1].Product.ID)
}

func TestStore_Visibility(t *testing.T) {
	s := NewStore()
	assert.False(t, s.IsOpen())

	s.Open()
	s.Open()
	assert.True(t, s.IsOpen())

	s.Toggle()
	assert.False(t, s.IsOpen())

	s.Toggle()
	s.Add(product("tea", "3"))
	s.Close()
	assert.False(t, s.IsOpen())
	assert.Equal(t, 1, s.TotalItems())
}

func TestStore_ClearLeavesPanel(t *testing.T) {
	s := NewStore()
	s.Add(product("tea", "3"))
	s.Open()

	s.Clear()

	assert.Equal(t, 0, s.TotalItems())
	assert.True(t, s.IsOpen())
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore()
	var got []Snapshot
	unsubscribe := s.Subscribe(func(snap Snapshot) { got = append(got, snap) })

	s.Add(product("chai", "4"))
	s.UpdateQuantity("chai", 1) // unchanged
	s.Remove("nope")            // absent
	s.Close()                   // already closed
	s.Toggle()
	unsubscribe()
	s.Add(product("chai", "4"))

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].TotalItems)
	assert.False(t, got[0].Open)
	assert.True(t, got[1].Open)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := NewStore()
	s.Add(product("chai", "4"))

	snap := s.Snapshot()
	snap.Lines[0].Quantity = 99

	assert.Equal(t, 1, s.Quantity("chai"))
}

func TestStore_InvariantsUnderRandomOps(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	catalog := []model.Product{
		product("espresso", "3.50"),
		product("croissant", "3.50"),
		product("toast", "8.50"),
		product("matcha", "5.25"),
	}
	s := NewStore()

	for i := 0; i < 1000; i++ {
		p := catalog[r.Intn(len(catalog))]
		switch r.Intn(4) {
		case 0, 1:
			s.Add(p)
		case 2:
			s.UpdateQuantity(p.ID, r.Intn(6)-2)
		case 3:
			s.Remove(p.ID)
		}

		snap := s.Snapshot()
		seen := map[string]bool{}
		items := 0
		sum := decimal.Zero
		for _, l := range snap.Lines {
			require.GreaterOrEqual(t, l.Quantity, 1)
			require.False(t, seen[l.Product.ID], "duplicate line %s", l.Product.ID)
			seen[l.Product.ID] = true
			items += l.Quantity
			sum = sum.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
		require.Equal(t, items, snap.TotalItems)
		require.True(t, sum.Equal(snap.TotalPrice), "total %s != %s", snap.TotalPrice, sum)
	}
}

func TestStore_ConcurrentAdds(t *testing.T) {
	s := NewStore()
	p := product("americano", "3.75")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(p)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Quantity("americano"))
	assert.Equal(t, "187.5", s.TotalPrice().String())
}

func TestStore_ConcurrentNotificationsArriveInOrder(t *testing.T) {
	s := NewStore()
	p := product("americano", "3.75")
	var seen []int
	s.Subscribe(func(snap Snapshot) { seen = append(seen, snap.TotalItems) })

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(p)
		}()
	}
	wg.Wait()

	require.Len(t, seen, 100)
	for i, n := range seen {
		assert.Equal(t, i+1, n)
	}
}
