package searcher

// Hyperparameters for the Monte-Carlo tiers

const EasyTraces = 8    // Random playouts per candidate move on easy
const NormalTraces = 60 // Random playouts per candidate move on normal
