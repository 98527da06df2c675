package thesportsdb

import "testing"

func TestIsWomensSoccerEvent(t *testing.T) {
	cases := []struct {
		name string
		ev   rawEvent
		want bool
	}{
		{
			name: "known league id",
			ev:   rawEvent{LeagueID: "4521", League: "NWSL", Sport: "Soccer"},
			want: true,
		},
		{
			name: "known id without sport tag",
			ev:   rawEvent{LeagueID: "4849", League: "WSL"},
			want: true,
		},
		{
			name: "approved name",
			ev:   rawEvent{League: "Frauen-Bundesliga", Sport: "Soccer"},
			want: true,
		},
		{
			name: "womens keyword",
			ev:   rawEvent{League: "Scottish Women's Premier League", Sport: "Soccer"},
			want: true,
		},
		{
			name: "liga fpd denied",
			ev:   rawEvent{League: "Liga FPD", Sport: "Soccer"},
			want: false,
		},
		{
			name: "liga fpd denied despite womens fragment",
			ev:   rawEvent{League: "Liga FPD Femenina", Sport: "Soccer"},
			want: false,
		},
		{
			name: "swiss super league denied",
			ev:   rawEvent{League: "Swiss Super League", Sport: "Soccer"},
			want: false,
		},
		{
			name: "derde divisie denied",
			ev:   rawEvent{League: "Derde Divisie", Sport: "Soccer"},
			want: false,
		},
		{
			name: "name match requires soccer sport",
			ev:   rawEvent{League: "Women's Premier Hockey League", Sport: "Field Hockey"},
			want: false,
		},
		{
			name: "unknown mens league",
			ev:   rawEvent{League: "Premier League", Sport: "Soccer"},
			want: false,
		},
		{
			name: "empty league",
			ev:   rawEvent{Sport: "Soccer"},
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isWomensSoccerEvent(tc.ev); got != tc.want {
				t.Fatalf("isWomensSoccerEvent(%+v) = %v, want %v", tc.ev, got, tc.want)
			}
		})
	}
}

func TestCleanLeagueName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"American NWSL", "NWSL"},
		{"FA Women's Super League", "WSL"},
		{"Google Pixel Frauen-Bundesliga", "Frauen-Bundesliga"},
		{"D1 Arkema", "Division 1 Féminine"},
		{"UEFA Women's Champions League", "UWCL"},
		{"Liga MX Femenil", "Liga MX Femenil"},
		{"", "Unknown League"},
	}
	for _, tc := range cases {
		if got := cleanLeagueName(tc.in); got != tc.want {
			t.Fatalf("cleanLeagueName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTrackedLeaguesAreKnown(t *testing.T) {
	for _, id := range trackedLeagueIDs {
		if _, ok := womensLeagueIDs[id]; !ok {
			t.Fatalf("tracked league %d missing from the id table", id)
		}
	}
}
