// Package srs holds the spaced-repetition rules: interval schedule, answer
// processing, queue classification and assembly, category interleaving and
// progress aggregation. Every function is pure; "today" and randomness are
// always passed in.
package srs
