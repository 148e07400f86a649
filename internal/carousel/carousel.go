package carousel

import "errors"

var ErrIndexOutOfRange = errors.New("slide index out of range")

// Deck — состояние карусели одного урока. Живет в кеше между запросами,
// поэтому все поля сериализуемые.
type Deck struct {
	LessonID    string   `json:"lesson_id"`
	YoutubeLink string   `json:"youtube_link"`
	Cards       []string `json:"cards"`
	Active      int      `json:"active"`
}

func NewDeck(lessonID, youtubeLink string, cards []string) *Deck {
	return &Deck{
		LessonID:    lessonID,
		YoutubeLink: youtubeLink,
		Cards:       cards,
	}
}

// Next листает вперед с переходом по кругу, как bootstrap-карусель.
func (d *Deck) Next() {
	if len(d.Cards) == 0 {
		return
	}
	d.Active = (d.Active + 1) % len(d.Cards)
}

func (d *Deck) Prev() {
	if len(d.Cards) == 0 {
		return
	}
	d.Active = (d.Active - 1 + len(d.Cards)) % len(d.Cards)
}

// GoTo — прямой переход по клику на индикатор.
func (d *Deck) GoTo(index int) error {
	if index < 0 || index >= len(d.Cards) {
		return ErrIndexOutOfRange
	}
	d.Active = index
	return nil
}

func (d *Deck) Current() (string, bool) {
	if len(d.Cards) == 0 {
		return "", false
	}
	return d.Cards[d.Active], true
}

// Indicators: по точке на карточку, активная помечена true.
func (d *Deck) Indicators() []bool {
	dots := make([]bool, len(d.Cards))
	if len(dots) > 0 {
		dots[d.Active] = true
	}
	return dots
}
