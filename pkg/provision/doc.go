/*
Package provision executes ordered environment-provisioning plans with
fail-fast semantics: steps run in strict declaration order, the first non-zero
exit aborts the run and its code becomes the process exit code, and a single
completion message is printed only when every step succeeded.

Two built-in plans make a headless Chromium available for the scraper: one via
the Playwright vendor installer, one via OS packages. Custom plans can be
loaded from a YAML file. Idempotence is delegated to the underlying package
managers, which treat re-installation as a no-op or upgrade.
*/
package provision
