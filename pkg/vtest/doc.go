// Package vtest provides test helpers for virtual node trees: simulated
// event dispatch against an element's registered handlers, and assertion
// helpers over snapshots and merge warning sequences.
package vtest
