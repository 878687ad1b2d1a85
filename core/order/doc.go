// Package order holds the normalized order record, the store contact record,
// and the pure formatters shared by every order email body.
package order
