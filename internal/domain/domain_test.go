package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeZone(t *testing.T) {
	t.Parallel()

	require.Equal(t, "mh", NormalizeZone("  MH "))
	require.Equal(t, "", NormalizeZone("   "))
}

func TestPartner_InZone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		partner Partner
		zone    string
		want    bool
	}{
		{name: "exact", partner: Partner{ServiceZone: "KA"}, zone: "KA", want: true},
		{name: "case and spaces", partner: Partner{ServiceZone: " ka"}, zone: "Ka  ", want: true},
		{name: "other zone", partner: Partner{ServiceZone: "KA"}, zone: "MH", want: false},
		{name: "empty partner zone", partner: Partner{ServiceZone: ""}, zone: "", want: false},
		{name: "blank partner zone", partner: Partner{ServiceZone: "  "}, zone: "  ", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.partner.InZone(tt.zone))
		})
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	t.Parallel()

	require.True(t, OrderPaid.Valid())
	require.True(t, OrderDeclined.Valid())
	require.False(t, OrderStatus("paid").Valid())
	require.True(t, OrderCancelled.Final())
	require.False(t, OrderPaid.Final())
}

func TestOrder_CloneIsDeep(t *testing.T) {
	t.Parallel()

	id := "p-1"
	o := &Order{ID: 1, AssignedPartnerID: &id, CreatedAt: time.Now()}
	cp := o.Clone()
	*cp.AssignedPartnerID = "p-2"

	require.Equal(t, "p-1", *o.AssignedPartnerID)
	require.True(t, o.AssignedTo("p-1"))
	require.False(t, o.AssignedTo("p-2"))
}
