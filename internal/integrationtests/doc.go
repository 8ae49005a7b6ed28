// Package integrationtests runs flow files end to end through a fully wired
// App. It contains only tests.
package integrationtests
