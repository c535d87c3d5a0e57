package tagging

import "testing"

func sameTags(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name      string
		landmarks []string
		labels    []string
		want      []string
	}{
		{
			name:   "no landmark takes first five labels",
			labels: []string{"a", "b", "c", "d", "e", "f"},
			want:   []string{"a", "b", "c", "d", "e"},
		},
		{
			name:      "landmark takes slot one, labels fill the rest",
			landmarks: []string{"L"},
			labels:    []string{"a", "b", "c", "d", "e"},
			want:      []string{"L", "a", "b", "c", "d"},
		},
		{
			name:      "second landmark is ignored",
			landmarks: []string{"L1", "L2"},
			labels:    []string{"a"},
			want:      []string{"L1", "a"},
		},
		{
			name:      "fewer labels than slots truncates",
			landmarks: []string{"Eiffel Tower"},
			labels:    []string{"tower", "sky"},
			want:      []string{"Eiffel Tower", "tower", "sky"},
		},
		{
			name:      "landmark only",
			landmarks: []string{"Colosseum"},
			want:      []string{"Colosseum"},
		},
		{
			name:   "labels only, fewer than five",
			labels: []string{"beach", "sea"},
			want:   []string{"beach", "sea"},
		},
		{
			name: "nothing detected yields no tags",
			want: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.landmarks, tc.labels)
			if !sameTags(got, tc.want) {
				t.Fatalf("Resolve(%v, %v) = %v, want %v", tc.landmarks, tc.labels, got, tc.want)
			}

			// Pure function: calling again with the same inputs must not differ.
			again := Resolve(tc.landmarks, tc.labels)
			if !sameTags(got, again) {
				t.Fatalf("Resolve is not stable: first %v then %v", got, again)
			}
		})
	}
}

func TestResolveDoesNotMutateInputs(t *testing.T) {
	landmarks := []string{"Big Ben", "Tower Bridge"}
	labels := []string{"clock", "river", "city"}

	Resolve(landmarks, labels)

	if landmarks[0] != "Big Ben" || landmarks[1] != "Tower Bridge" {
		t.Fatalf("landmarks mutated: %v", landmarks)
	}
	if labels[0] != "clock" || labels[1] != "river" || labels[2] != "city" {
		t.Fatalf("labels mutated: %v", labels)
	}
}

func TestResolveNeverExceedsMaxTags(t *testing.T) {
	labels := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	if got := Resolve([]string{"L"}, labels); len(got) != MaxTags {
		t.Fatalf("expected %d tags, got %d (%v)", MaxTags, len(got), got)
	}
	if got := Resolve(nil, labels); len(got) != MaxTags {
		t.Fatalf("expected %d tags, got %d (%v)", MaxTags, len(got), got)
	}
}
