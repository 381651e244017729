// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - LLMService: classification and answer synthesis. Without it no
//     question can be answered, so startup fails rather than degrading.
//   - CatalogIndex: part identifier → record lookups.
//   - CompatibilityIndex: model → compatible parts membership tests.
//   - ConfigStore: application configuration.
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - VectorSearch: nearest-neighbour retrieval. Without it, semantic
//     queries produce an empty evidence bundle and the synthesizer says
//     so, but exact and compatibility queries are unaffected.
//   - PromptStore: customisable prompt templates. Without it, services
//     use embedded defaults.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
