package catalog

import "slices"

// Random is the category that fetches an unfiltered batch. It is never sent
// to the question bank as a category value.
const (
	Random           = "Random"
	RandomDifficulty = "random"
)

// Category is one card of the selection screen.
type Category struct {
	Name         string
	Image        string
	Difficulties []string
}

// Order matters: it is the order the cards are shown in.
var categories = []Category{
	{Name: "JavaScript", Image: "js.png", Difficulties: []string{"easy"}},
	{Name: "HTML", Image: "html.png", Difficulties: []string{"easy", "medium", "hard"}},
	{Name: "PHP", Image: "php.png", Difficulties: []string{"easy", "medium", "hard"}},
	{Name: "Laravel", Image: "laravel.png", Difficulties: []string{"easy"}},
	{Name: "Python", Image: "python.png", Difficulties: []string{"easy", "medium"}},
	{Name: "Docker", Image: "docker.png", Difficulties: []string{"easy", "medium", "hard"}},
	{Name: Random, Image: "random.png", Difficulties: []string{RandomDifficulty}},
}

// All returns a copy of the catalog in display order.
func All() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = c.clone()
	}
	return out
}

// Lookup finds a category by its exact name.
func Lookup(name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c.clone(), true
		}
	}
	return Category{}, false
}

// IsRandom reports whether name is the category that skips difficulty
// selection and fetches unfiltered questions.
func IsRandom(name string) bool {
	return name == Random
}

// HasDifficulty reports whether the category offers the difficulty.
func (c Category) HasDifficulty(difficulty string) bool {
	return slices.Contains(c.Difficulties, difficulty)
}

func (c Category) clone() Category {
	c.Difficulties = slices.Clone(c.Difficulties)
	return c
}
