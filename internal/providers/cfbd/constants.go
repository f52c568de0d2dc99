package cfbd

const providerName = "cfbd"
