// Package services implements the core behaviour behind the driving
// ports: best-match scanning, the threshold response policy and the
// learning path.
package services
