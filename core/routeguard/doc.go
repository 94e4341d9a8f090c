// Package routeguard decides what a visitor sees when navigating to a
// role-restricted page. Evaluate is a pure function of the session
// snapshot and the page's allowed roles; performing the resulting
// navigation is the caller's job. Because the decision depends only on
// its inputs, it must be re-evaluated whenever the session changes;
// nothing here is cached.
package routeguard
