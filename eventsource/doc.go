// Package eventsource binds the Quartz event source key-state query.
//
// The binding is compiled only for darwin with cgo enabled. On every other
// target the package is empty, so code that reaches for New or System fails
// to build instead of receiving a made-up answer.
package eventsource
