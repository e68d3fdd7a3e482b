// Package service contains the application's use cases. Its central piece is
// PlanService, which turns a validated plan request into a plan by asking a
// text generator, validating the answer, retrying a bounded number of times,
// and substituting a deterministic fallback plan when every attempt fails.
//
// Key components:
//
// 1. PlanService:
//   - Builds the prompt once per request
//   - Classifies every attempt as an explicit AttemptOutcome
//   - Never reports generation problems to the caller
//
// 2. RetryPolicy and Sleeper:
//   - The attempt bound and backoff are injected, not hardcoded
//   - Sleeper isolates waiting so tests run without real delays
//
// 3. Dependency Management:
//   - Services receive dependencies, including their logger, through
//     constructor injection
package service
