// Package progress provides animated text and collection widgets for
// loading states.
//
// The text widgets split a string into one cell per character and sweep an
// effect across the cells in sequence: [FadingText] fades opacity,
// [JumpingText] translates cells up and back, and [ScalingText] grows them.
// Each widget owns a single repeating animation controller; per-cell timing
// comes from the stagger package, so all cells sample one shared progress
// value through their own interval curves.
//
// [CollectionSlideTransition] and [CollectionScaleTransition] are the
// generic building blocks underneath the text adapters: they animate any
// ordered list of children, not just characters.
// [HeartbeatProgressIndicator] and [GlowingProgressIndicator] animate a
// single child instead of a collection.
//
// # Styling Model
//
// The text widgets are theme-aware: a zero Style falls back to the current
// theme's BodyLarge text style. Durations and animation targets treat zero
// as "use the documented default"; everything else is explicit.
package progress
