// Package host adapts an external framebuffer game engine to a display.
//
// The engine is not part of this module. It drives a [Platform]: it
// initializes the display once, then loops submitting ARGB frames, polling
// key events, reading the millisecond clock and sleeping. [Display]
// implements Platform on top of a [Presenter] (a window, or [Headless] for
// tests and batch runs) and routes each frame through a [Compositor], which
// can apply the blue-noise dither effect.
package host
