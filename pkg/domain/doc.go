// Package domain contains the entities of the polling service: users,
// question types, polls, questions, answers and response tallies. They are
// free of infrastructure concerns so every layer can share them.
package domain
