/*
Package ports defines the driven ports (interfaces) of the onboarding engine.

These interfaces decouple the flow and the profile derivation from concrete
implementations, allowing hosts to plug in storage backends, module sources
and classifiers.

# Key Interfaces

  - Classifier: Maps a final answer snapshot to a UserProfile (in-process rules or a remote service).
  - SessionStore: Persists and loads session records for resumable onboarding.
  - ModuleLoader: Produces question modules from an external source (e.g., YAML files).
*/
package ports
