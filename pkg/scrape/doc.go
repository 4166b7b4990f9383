/*
Package scrape extracts the Trashion storefront inventory with a headless
Chromium session (Playwright) and models the resulting snapshots.

The storefront paginates with a "Load More" button and renders each item's
4-digit ID in parentheses. A scrape clicks through all pages, collects the IDs,
and produces an immutable Snapshot. Comparing two snapshots yields the items
sold in between.

Scraping is gated by a business-hours window (Hours); outside the window
callers are expected to serve the last snapshot from a store instead.
*/
package scrape
