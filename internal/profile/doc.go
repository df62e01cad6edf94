// Package profile loads named property path lists from YAML.
//
// A profile names the fields one consumer wants to see:
//
//	version: "1"
//	profiles:
//	  - name: customer.base
//	    paths: [ID, Email]
//	  - name: customer.card
//	    extends: customer.base
//	    paths:
//	      - FullName
//	      - Address.City
//
// Both paths and extends accept a single string or a list. Extended paths
// come first; a path is listed once even when several parents declare it.
package profile
