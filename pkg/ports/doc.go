// Package ports defines the capability interfaces tendril expects from
// its hosts. The engine depends only on these contracts; concrete
// terminal and scripted implementations live under pkg/adapters.
package ports
