package usecase

import (
	"sync"
	"time"
)

// DefaultSlideInterval matches the storefront hero rotation.
const DefaultSlideInterval = 3 * time.Second

// Carousel cycles through a fixed number of slides, auto-advancing on a
// ticker. User navigation restarts the ticker so a manual change is not
// immediately followed by an automatic one, and the timer is never
// scheduled twice.
type Carousel struct {
	mu       sync.Mutex
	slides   int
	current  int
	interval time.Duration
	onChange func(index int)

	ticker *time.Ticker
	stop   chan struct{}
}

// NewCarousel creates a carousel over the given number of slides.
// onChange, if non-nil, is called with the new index on every change,
// automatic or manual.
func NewCarousel(slides int, interval time.Duration, onChange func(index int)) *Carousel {
	if slides < 1 {
		slides = 1
	}
	if interval <= 0 {
		interval = DefaultSlideInterval
	}
	return &Carousel{
		slides:   slides,
		interval: interval,
		onChange: onChange,
	}
}

// Current returns the active slide index.
func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Start begins auto-advancing. Calling Start on a running carousel is a
// no-op: the timer is never double-scheduled.
func (c *Carousel) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker != nil {
		return
	}

	c.ticker = time.NewTicker(c.interval)
	c.stop = make(chan struct{})
	go c.run(c.ticker, c.stop)
}

// Stop pauses auto-advancing. The current index is kept.
func (c *Carousel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

// Resume is Start under its storefront name: restart after a pause.
func (c *Carousel) Resume() {
	c.Start()
}

// Next moves one slide forward, wrapping to the first after the last,
// and restarts the auto-advance timer if it is running.
func (c *Carousel) Next() int {
	return c.navigate(1)
}

// Prev moves one slide back, wrapping to the last before the first, and
// restarts the auto-advance timer if it is running.
func (c *Carousel) Prev() int {
	return c.navigate(-1)
}

// GoTo jumps to the given slide. Out-of-range indexes wrap modulo the
// slide count. Restarts the timer if running.
func (c *Carousel) GoTo(index int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = ((index % c.slides) + c.slides) % c.slides
	c.resetLocked()
	c.notifyLocked()
	return c.current
}

func (c *Carousel) navigate(step int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = ((c.current+step)%c.slides + c.slides) % c.slides
	c.resetLocked()
	c.notifyLocked()
	return c.current
}

// run advances on ticker fires until stopped. The ticker and stop
// channel are captured per start so a Stop/Start cycle cannot leave two
// loops alive.
func (c *Carousel) run(ticker *time.Ticker, stop chan struct{}) {
	for {
		select {
		case <-ticker.C:
			c.advance()
		case <-stop:
			return
		}
	}
}

func (c *Carousel) advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = (c.current + 1) % c.slides
	c.notifyLocked()
}

// resetLocked restarts the timer after a user-initiated navigation.
func (c *Carousel) resetLocked() {
	if c.ticker != nil {
		c.ticker.Reset(c.interval)
	}
}

func (c *Carousel) stopLocked() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.stop)
	c.ticker = nil
	c.stop = nil
}

func (c *Carousel) notifyLocked() {
	if c.onChange != nil {
		c.onChange(c.current)
	}
}
