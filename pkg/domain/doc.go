/*
Package domain contains the core models of the onboarding flow.

It defines the question graph vocabulary, the flow state walked by the
controller, the answer snapshot handed to resolvers and classifiers, and the
derived user profile. The package is kept free of I/O and persistence.

# Key Entities

  - QuestionNode: One step of the flow (kind, answer fields, payload, resolver).
  - Answers: Immutable snapshot of the answer store.
  - FlowState: Current node, visited history and projected sequence of a session.
  - UserProfile: Classification, suggestions and recommendations derived from the answers.
  - SessionRecord: Persisted envelope used by session stores.
*/
package domain
