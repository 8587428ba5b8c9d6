package minigame

// gallows holds one drawing per number of tries left, from none to eight.
var gallows = [...]string{
	`
  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`
  +---+
  |   |
      |
      |
      |
      |
=========`,
	`
  +---+
      |
      |
      |
      |
      |
=========`,
	`
      +
      |
      |
      |
      |
      |
=========`,
}

// stage returns the drawing for the number of tries left.
func stage(triesLeft int) string {
	if triesLeft < 0 {
		triesLeft = 0
	}
	if triesLeft >= len(gallows) {
		triesLeft = len(gallows) - 1
	}
	return gallows[triesLeft]
}
