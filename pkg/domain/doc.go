// Package domain contains the core value types of tendril: the Question
// prompt specification and the error taxonomy shared by the engine,
// the validators, and the adapters.
package domain
