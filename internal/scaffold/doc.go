// Package scaffold generates new routes in a Next.js project. It powers the
// "nextroute create" commands: collecting a route name (and a parameter name
// for dynamic routes), turning them into a Plan of directories and files
// below the routing root, and writing that plan to disk.
//
// Three template variants exist: a static route, a dynamic route whose page
// awaits its params (Next.js 15 and later), and a dynamic route whose page
// reads params synchronously (Next.js 14 and earlier). Each variant writes
// the same layout; only the page body differs.
package scaffold
