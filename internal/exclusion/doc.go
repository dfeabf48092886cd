// Package exclusion reconciles the function registry with the capability
// table and the exclusion list: every defined function must be accounted for
// in exactly one of them.
package exclusion
