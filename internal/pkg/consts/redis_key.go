package consts

const (
	ScrapeLock = "instagram:scrape:lock:"
)
