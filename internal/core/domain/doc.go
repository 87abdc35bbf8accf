// Package domain holds the core types of the expert system: knowledge
// records, match results, outcomes and settings.
//
// Domain types carry no infrastructure concerns. Persistence lives behind
// the driven ports and the matching pipeline lives in internal/text.
package domain
