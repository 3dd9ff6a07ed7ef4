// Package domain contains the core business entities of the podcast platform:
// users with their roles, podcasts and their episodes. Entities validate
// themselves and know nothing about storage or transport.
package domain
