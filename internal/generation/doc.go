// Package generation defines the boundary between the planner and external
// AI/LLM services. A Generator sends one prompt and returns either a JSON
// object or a single normalized failure; retry policy lives with the caller.
package generation
