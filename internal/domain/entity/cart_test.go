package entity

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItems_Merge(t *testing.T) {
	t.Parallel()

	user := CartItems{
		"A": {Quantity: 1, Price: decimal.RequireFromString("10.00"), Name: "Alface"},
		"B": {Quantity: 3, Price: decimal.RequireFromString("4.50"), Name: "Banana"},
	}
	anonymous := CartItems{
		"A": {Quantity: 2, Price: decimal.RequireFromString("12.00"), Name: "Alface nova"},
	}

	user.Merge(anonymous)

	require.Len(t, user, 2)
	assert.Equal(t, 3, user["A"].Quantity)
	assert.Equal(t, "Alface", user["A"].Name)
	assert.True(t, decimal.RequireFromString("10.00").Equal(user["A"].Price))
	assert.Equal(t, 3, user["B"].Quantity)
	assert.Equal(t, 2, user.Count())
}

func TestCartItems_MergeInsertsNewIDsWithSnapshot(t *testing.T) {
	t.Parallel()

	user := CartItems{}
	user.Merge(CartItems{"C": {Quantity: 5, Price: decimal.RequireFromString("1.99"), Name: "Cebola"}})

	assert.Equal(t, CartItem{Quantity: 5, Price: decimal.RequireFromString("1.99"), Name: "Cebola"}, user["C"])
}

func TestCartItems_AddKeepsFirstSnapshot(t *testing.T) {
	t.Parallel()

	items := CartItems{}
	items.Add("A", 2, decimal.RequireFromString("10.00"), "Alface")
	items.Add("A", 2, decimal.RequireFromString("99.00"), "Renomeado")

	require.Len(t, items, 1)
	assert.Equal(t, 4, items["A"].Quantity)
	assert.Equal(t, "Alface", items["A"].Name)
	assert.True(t, decimal.RequireFromString("10.00").Equal(items["A"].Price))
}

func TestCartItems_QuantitySaturates(t *testing.T) {
	t.Parallel()

	items := CartItems{}
	items.Add("A", MaxLineQuantity-1, decimal.NewFromInt(1), "Alface")
	items.Add("A", math.MaxInt, decimal.NewFromInt(1), "Alface")
	assert.Equal(t, MaxLineQuantity, items["A"].Quantity)

	items.Add("B", math.MaxInt, decimal.NewFromInt(1), "Banana")
	assert.Equal(t, MaxLineQuantity, items["B"].Quantity)

	items.Merge(CartItems{
		"A": {Quantity: math.MaxInt, Price: decimal.NewFromInt(2), Name: "Alface"},
		"C": {Quantity: math.MaxInt, Price: decimal.NewFromInt(3), Name: "Cebola"},
	})
	for id, line := range items {
		assert.Equal(t, MaxLineQuantity, line.Quantity, id)
		assert.Positive(t, line.Quantity, id)
	}
}

func TestCartItems_RemoveAbsentIsNoop(t *testing.T) {
	t.Parallel()

	items := CartItems{"A": {Quantity: 1, Price: decimal.NewFromInt(1), Name: "a"}}
	items.Remove("missing")

	assert.Len(t, items, 1)
}

func TestCartItems_Total(t *testing.T) {
	t.Parallel()

	items := CartItems{
		"A": {Quantity: 2, Price: decimal.RequireFromString("10.50")},
		"B": {Quantity: 1, Price: decimal.RequireFromString("0.25")},
	}

	assert.Equal(t, "21.25", items.Total().StringFixed(2))
}

func TestCartOwner_Validate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	tests := []struct {
		name    string
		owner   CartOwner
		wantErr bool
	}{
		{name: "user only", owner: UserCartOwner(userID)},
		{name: "session only", owner: SessionCartOwner("abc")},
		{name: "neither", owner: CartOwner{}, wantErr: true},
		{name: "both", owner: CartOwner{UserID: &userID, SessionID: "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.owner.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCartOwner)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		price string
		want  int64
	}{
		{"19.999", 1999},
		{"19.99", 1999},
		{"0.005", 0},
		{"10", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.want, MinorUnits(decimal.RequireFromString(tt.price)))
		})
	}
}
