// Package classes holds the action-class vocabulary for the Charades corpus:
// 157 classes in the reference release, identified by "c"-prefixed codes and
// enumerated in the stable order of the shipped class file.
package classes
