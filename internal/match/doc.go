// Package match turns raw animation clip names into canonical keys and
// classifies them against ordered keyword tables.
//
// Key functions:
//   - Normalize: strips the namespace prefix and reversal marker
//   - RuleSet.First: evaluates ordered (predicate, result) rules, first match wins
//   - Classifier.Classify: locomotion indicators first, then the keyword tables
package match
