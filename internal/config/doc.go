// Package config loads the server settings with viper and validates them with
// validator before anything else starts.
//
// Sources, lowest precedence first: built-in defaults, an optional
// config.yaml in the working directory, then PODCAST_* environment variables
// (auth.jwt_secret is read from PODCAST_AUTH_JWT_SECRET). Load fails on a
// short or missing JWT secret, an unknown storage driver, or a postgres
// driver without a database URL.
package config
