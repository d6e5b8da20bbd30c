package meeting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLegacyAgenda(t *testing.T) {
	cases := []struct {
		packed string
		want   LegacyAgenda
	}{
		{"10:00|2024-04-01|Graduated", LegacyAgenda{"10:00", "2024-04-01", "Graduated"}},
		{"10:00|2024-04-01", LegacyAgenda{TimeSlot: "10:00", CompletedAt: "2024-04-01"}},
		{"10:00", LegacyAgenda{TimeSlot: "10:00"}},
		{"", LegacyAgenda{}},
		{" 10:00 | 2024-04-01 | S1 ", LegacyAgenda{"10:00", "2024-04-01", "S1"}},
		{"|2024-04-01|", LegacyAgenda{CompletedAt: "2024-04-01"}},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, ParseLegacyAgenda(tc.packed), "packed %q", tc.packed)
	}
}

func TestLegacyAgendaPack(t *testing.T) {
	require.Equal(t, "10:00|2024-04-01|Graduated",
		LegacyAgenda{"10:00", "2024-04-01", "Graduated"}.Pack())
	require.Equal(t, "10:00|2024-04-01",
		LegacyAgenda{TimeSlot: "10:00", CompletedAt: "2024-04-01"}.Pack())
	require.Equal(t, "10:00", LegacyAgenda{TimeSlot: "10:00"}.Pack())
	require.Equal(t, "", LegacyAgenda{}.Pack())
}

func TestParseLegacyAgendaRoundTrip(t *testing.T) {
	for _, packed := range []string{"10:00|2024-04-01|Graduated", "10:00|2024-04-01", "10:00"} {
		require.Equal(t, packed, ParseLegacyAgenda(packed).Pack())
	}
}
