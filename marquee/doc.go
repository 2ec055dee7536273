/*
Package marquee implements a single-line scrolling text label.

A Label measures its text against the width of its container. Text that
fits is shown statically, left aligned. Text that overflows scrolls
continuously: the primary instance slides out of view while a trailing
echo instance slides in, the cycle pauses, and then it loops.

Labels never start goroutines. All waiting is expressed as callbacks on a
Scheduler, normally a *Loop that the host advances once per display
refresh:

	loop := marquee.NewLoop(time.Now())
	l := marquee.New(loop,
		marquee.WithBounds(marquee.Rect{Width: 40, Height: 1}),
		marquee.WithMeasurer(marquee.Monospace{}),
		marquee.WithText("Welcome to Metro. This is a Belgrave Limited Express Service"),
	)

	// on every frame
	loop.Advance(now)
	fmt.Println(marquee.Render(l, lipgloss.NewStyle()))
*/
package marquee
