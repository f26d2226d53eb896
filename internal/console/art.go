package console

// stages are indexed by wrong-guess count.
var stages = [...]string{
	`
     _____
    |     |
          |
          |
          |
          |
    =========`,
	`
     _____
    |     |
    O     |
          |
          |
          |
    =========`,
	`
     _____
    |     |
    O     |
    |     |
          |
          |
    =========`,
	`
     _____
    |     |
    O     |
   /|     |
          |
          |
    =========`,
	`
     _____
    |     |
    O     |
   /|\    |
          |
          |
    =========`,
	`
     _____
    |     |
    O     |
   /|\    |
   /      |
          |
    =========`,
	`
     _____
    |     |
    O     |
   /|\    |
   / \    |
          |
    =========`,
}

// Stage returns the drawing for wrong guesses, clamped to the last stage.
func Stage(wrong int) string {
	if wrong < 0 {
		wrong = 0
	}
	if wrong >= len(stages) {
		wrong = len(stages) - 1
	}
	return stages[wrong]
}
