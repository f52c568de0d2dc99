package espn

const providerName = "espn"

// The site API caps team listings well below this; one page covers FBS+FCS.
const teamListLimit = "500"
