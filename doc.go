/*
Package trashion is the inventory monitor for the Trashion second-hand
storefront. It scrapes the shop's paginated listing with a headless Chromium
session, keeps timestamped snapshots of the item IDs on display, detects sold
items by diffing consecutive snapshots, and alerts staff over a Discord
webhook so sold pieces get pulled from the physical racks.

The Service type is the composition root: every surface (the HTTP API, the
MCP adapter, the CLI and the background monitor) drives the same
scrape/persist/diff/notify pipeline through it.

Scraping is only allowed during the shop's business hours; outside the window
the last snapshot is served from the store. The pkg/provision package prepares
a host with the required browser runtime before the first scrape.
*/
package trashion
