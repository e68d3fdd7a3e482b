// Package domain contains the planner's core value types and the rules that
// define a well-formed plan. It validates incoming plan requests and
// candidate plans returned by a text generator, independent of any specific
// infrastructure or delivery mechanism.
package domain
