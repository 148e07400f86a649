package carousel

// Порог в пикселях, меньшие движения игнорируем
const swipeThreshold = 50

type SwipeAction int

const (
	SwipeNone SwipeAction = iota
	SwipeNext
	SwipePrev
)

// SwipeTracker переводит touch-события в действия карусели:
// свайп влево больше чем на 50px — следующая карточка, вправо — предыдущая.
type SwipeTracker struct {
	startX float64
	lastX  float64
	moved  bool
}

func (s *SwipeTracker) Start(x float64) {
	s.startX = x
	s.lastX = x
	s.moved = false
}

func (s *SwipeTracker) Move(x float64) {
	s.lastX = x
	s.moved = true
}

// End завершает жест. Без единого Move действия нет: иначе тап
// в правой части экрана считался бы свайпом до нуля.
func (s *SwipeTracker) End() SwipeAction {
	if !s.moved {
		return SwipeNone
	}
	delta := s.startX - s.lastX
	s.moved = false

	switch {
	case delta > swipeThreshold:
		return SwipeNext
	case delta < -swipeThreshold:
		return SwipePrev
	default:
		return SwipeNone
	}
}

// ResolveSwipe — жест целиком: первая точка это touchstart,
// остальные touchmove, конец последовательности — touchend.
func ResolveSwipe(points []float64) SwipeAction {
	if len(points) == 0 {
		return SwipeNone
	}
	var tracker SwipeTracker
	tracker.Start(points[0])
	for _, x := range points[1:] {
		tracker.Move(x)
	}
	return tracker.End()
}
